// Copyright 2024 intusaps
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sanitize ripulisce l'HTML dei contenuti redazionali (blog e
// progetti) con una whitelist di tag e attributi. I tag non ammessi vengono
// sostituiti dai loro figli, mai mantenuti.
package sanitize

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var allowedTags = map[string]bool{
	"p": true, "br": true, "b": true, "strong": true, "i": true,
	"em": true, "u": true, "ul": true, "ol": true, "li": true, "a": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "div": true, "span": true,
}

var allowedAttrs = map[string]map[string]bool{
	"a":          {"href": true, "title": true, "target": true, "rel": true},
	"div":        {"style": true},
	"p":          {"style": true},
	"span":       {"style": true},
	"h1":         {"style": true},
	"h2":         {"style": true},
	"h3":         {"style": true},
	"h4":         {"style": true},
	"h5":         {"style": true},
	"h6":         {"style": true},
	"blockquote": {"style": true},
}

// Tag il cui contenuto testuale non deve sopravvivere alla rimozione.
var droppedTags = map[string]bool{
	"script": true, "style": true, "iframe": true, "object": true,
	"embed": true, "textarea": true, "noscript": true, "title": true,
}

var allowedTextAlign = map[string]bool{
	"left": true, "right": true, "center": true, "justify": true,
	"start": true, "end": true, "initial": true, "inherit": true,
}

// HTML ritorna il frammento ripulito. Un input non parsabile o vuoto
// produce stringa vuota.
func HTML(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	nodes, err := html.ParseFragment(strings.NewReader(input), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return ""
	}
	var b strings.Builder
	for _, n := range nodes {
		renderClean(&b, n)
	}
	return b.String()
}

func renderClean(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(html.EscapeString(n.Data))
		return
	case html.ElementNode:
	default:
		// Commenti, doctype e script vengono scartati con i loro figli.
		return
	}

	tag := strings.ToLower(n.Data)
	if droppedTags[tag] {
		return
	}
	if !allowedTags[tag] {
		// Il tag cade, i figli sopravvivono.
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderClean(b, c)
		}
		return
	}

	b.WriteString("<" + tag)
	for _, attr := range cleanAttrs(tag, n.Attr) {
		b.WriteString(" " + attr.Key + `="` + html.EscapeString(attr.Val) + `"`)
	}
	if tag == "br" {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderClean(b, c)
	}
	b.WriteString("</" + tag + ">")
}

func cleanAttrs(tag string, attrs []html.Attribute) []html.Attribute {
	allow := allowedAttrs[tag]
	out := make([]html.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		name := strings.ToLower(attr.Key)
		if strings.HasPrefix(name, "on") || !allow[name] {
			continue
		}
		switch name {
		case "href":
			href := strings.TrimSpace(attr.Val)
			if strings.HasPrefix(strings.ToLower(href), "javascript:") {
				continue
			}
			out = append(out,
				html.Attribute{Key: "href", Val: href},
				html.Attribute{Key: "rel", Val: "noopener noreferrer"})
		case "style":
			if kept := cleanStyle(attr.Val); kept != "" {
				out = append(out, html.Attribute{Key: "style", Val: kept})
			}
		default:
			out = append(out, html.Attribute{Key: name, Val: attr.Val})
		}
	}
	return out
}

// cleanStyle mantiene la sola proprietà text-align con valori noti.
func cleanStyle(style string) string {
	kept := make([]string, 0, 1)
	for _, decl := range strings.Split(style, ";") {
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		prop := strings.ToLower(strings.TrimSpace(parts[0]))
		val := strings.ToLower(strings.TrimSpace(parts[1]))
		if prop == "text-align" && allowedTextAlign[val] {
			kept = append(kept, "text-align: "+val)
		}
	}
	return strings.Join(kept, "; ")
}
