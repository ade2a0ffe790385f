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

package ioc

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ego-component/egorm"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"
	"github.com/intusaps/intus-website/internal/pkg/database"
)

func InitDB() *egorm.Component {
	waitForDB(econf.GetString("mysql.dsn"))
	db := egorm.Load("mysql").Build()
	if err := database.NewTracingPlugin().Initialize(db); err != nil {
		panic(err)
	}
	return db
}

// waitForDB aspetta che MySQL accetti connessioni. In docker compose il
// database parte insieme al sito e i primi ping falliscono.
func waitForDB(dsn string) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		panic(err)
	}
	defer func() { _ = sqlDB.Close() }()

	const (
		pingTimeout = 5 * time.Second
		maxInterval = 10 * time.Second
		maxRetries  = 10
	)
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
	if err != nil {
		panic(err)
	}
	for {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			return
		}
		next, ok := strategy.Next()
		if !ok {
			panic("il database non risponde, tentativi esauriti")
		}
		time.Sleep(next)
	}
}
