/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	pipelineservice "github.com/wso2/xml-ingestion-service/internal/pipeline/service"
	"github.com/wso2/xml-ingestion-service/internal/system/config"
	"github.com/wso2/xml-ingestion-service/internal/system/database/provider"
	"github.com/wso2/xml-ingestion-service/internal/system/database/scripts"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
	"github.com/wso2/xml-ingestion-service/internal/system/workers"
	"github.com/wso2/xml-ingestion-service/test/setup"
)

// TestDB is the raw connection to the container, for fixtures and
// assertions that go underneath the stores.
var TestDB *sql.DB

func TestMain(m *testing.M) {
	ctx := context.Background()
	os.Setenv("TEST_MODE", "true")

	config.OverrideRuntime(config.Config{
		Log:    config.LogConfig{LogLevel: "error"},
		Schema: config.SchemaConfig{Dir: "testdata"},
	})
	_ = log.Init("error")

	pg, err := setup.SetupTestPostgres(ctx)
	if err != nil {
		fmt.Println("Failed to start test DB:", err)
		os.Exit(1)
	}

	TestDB = pg.DB
	provider.SetTestDB(pg.DB)

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		fmt.Println("Failed to get DB client:", err)
		os.Exit(1)
	}
	if err := dbClient.InitSchema(scripts.BootstrapDDL); err != nil {
		fmt.Println("Failed to create tables:", err)
		os.Exit(1)
	}

	// The orders table is the ingestion target used across the mapping and
	// pipeline tests.
	_, err = pg.DB.Exec(`CREATE TABLE IF NOT EXISTS orders (
		order_number TEXT,
		customer_name TEXT,
		amount NUMERIC,
		currency_code TEXT
	)`)
	if err != nil {
		fmt.Println("Failed to create orders table:", err)
		os.Exit(1)
	}

	workers.StartPipelineWorkers(10, 1, pipelineservice.GetPipelineService().ProcessSubmission)

	code := m.Run()

	workers.StopPipelineWorkers()
	_ = pg.Container.Terminate(ctx)

	os.Exit(code)
}
