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

package mqx

import (
	"context"
	"encoding/json"

	"github.com/ecodeclub/mq-api"
	"github.com/pkg/errors"
)

// Producer pubblica eventi di dominio già tipizzati. L'evento viaggia come
// JSON nel payload del messaggio.
type Producer[T any] interface {
	Produce(ctx context.Context, evt T) error
}

// GeneralProducer lega un tipo di evento a un singolo topic.
type GeneralProducer[T any] struct {
	producer mq.Producer
	topic    string
}

func NewGeneralProducer[T any](q mq.MQ, topic string) (*GeneralProducer[T], error) {
	p, err := q.Producer(topic)
	if err != nil {
		return nil, errors.Wrapf(err, "creazione producer sul topic %s", topic)
	}
	return &GeneralProducer[T]{
		producer: p,
		topic:    topic,
	}, nil
}

func (p *GeneralProducer[T]) Produce(ctx context.Context, evt T) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return errors.Wrap(err, "serializzazione evento fallita")
	}
	_, err = p.producer.Produce(ctx, &mq.Message{Value: data})
	if err != nil {
		return errors.Wrapf(err, "invio su topic=%s di event=%#v fallito", p.topic, evt)
	}
	return nil
}
