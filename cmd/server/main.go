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

package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	pipelineprovider "github.com/wso2/xml-ingestion-service/internal/pipeline/provider"
	"github.com/wso2/xml-ingestion-service/internal/system/config"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
	"github.com/wso2/xml-ingestion-service/internal/system/database/provider"
	"github.com/wso2/xml-ingestion-service/internal/system/database/scripts"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
	"github.com/wso2/xml-ingestion-service/internal/system/managers"
	"github.com/wso2/xml-ingestion-service/internal/system/workers"
)

const configFile = "repository/conf/deployment.yaml"

func main() {

	serverHome := getServerHome()

	envFiles, _ := filepath.Glob(filepath.Join(serverHome, "repository/conf/*.env"))
	if len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	cfg, err := config.LoadConfig(serverHome, configFile)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}
	if err := config.InitializeRuntime(serverHome, cfg); err != nil {
		stdlog.Fatalf("Failed to initialize runtime: %v", err)
	}

	logLevel := cfg.Log.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}
	if err := log.Init(logLevel); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := log.GetLogger()

	if err := bootstrapDatabase(); err != nil {
		logger.Fatal("Failed to bootstrap the database schema.", log.Error(err))
	}

	startPipeline(cfg)

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		logger.Fatal("Failed to register the services.", log.Error(err))
	}

	serverAddr := fmt.Sprintf("%s:%d", cfg.Addr.Host, cfg.Addr.Port)
	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener.", log.Error(err))
	}
	logger.Info(fmt.Sprintf("XML ingestion service started on: %s", serverAddr))

	server := &http.Server{Handler: enableCORS(mux, cfg.Auth.CORSAllowedOrigins)}

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		logger.Info("Shutting down.")
		workers.StopPipelineWorkers()
		_ = server.Close()
	}()

	if err := server.Serve(ln); err != nil && err != http.ErrServerClosed {
		logger.Error("Failed to serve requests.", log.Error(err))
	}
}

// bootstrapDatabase creates the service tables when they do not exist.
func bootstrapDatabase() error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return err
	}
	defer dbClient.Close()
	return dbClient.InitSchema(scripts.BootstrapDDL)
}

// startPipeline wires the ingestion queue to the pipeline service.
func startPipeline(cfg *config.Config) {

	queueSize := cfg.Pipeline.QueueSize
	if queueSize <= 0 {
		queueSize = constants.DefaultQueueSize
	}
	workerCount := cfg.Pipeline.Workers
	if workerCount <= 0 {
		workerCount = 1
	}

	pipelineService := pipelineprovider.NewPipelineProvider().GetPipelineService()
	workers.StartPipelineWorkers(queueSize, workerCount, pipelineService.ProcessSubmission)
}

// enableCORS answers preflight requests and restricts browser access to the
// configured origins. An empty origin list keeps the API same-origin only.
func enableCORS(next http.Handler, allowedOrigins []string) http.Handler {

	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (allowed[origin] || allowed["*"]) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getServerHome() string {

	homeFlag := flag.String("serverHome", "", "Path to the service home directory")
	flag.Parse()
	if *homeFlag != "" {
		return *homeFlag
	}

	dir, err := os.Getwd()
	if err != nil {
		stdlog.Fatalf("Failed to get current working directory: %v", err)
	}
	return dir
}
