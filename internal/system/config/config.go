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

package config

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

// AuthConfig carries the authentication boundary settings. Operators are
// static credentials resolved at login; the JWT secret signs session tokens.
type AuthConfig struct {
	JWTSecret          string           `yaml:"jwt_secret"`
	TokenLifetime      int64            `yaml:"token_lifetime_seconds"`
	CORSAllowedOrigins []string         `yaml:"cors_allowed_origins"`
	Operators          []OperatorConfig `yaml:"operators"`
}

type OperatorConfig struct {
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
	Roles    []string `yaml:"roles"`
}

type DataSourceConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// SchemaConfig points at the directory holding the interface XSD documents.
type SchemaConfig struct {
	Dir      string `yaml:"dir"`
	CacheTTL int64  `yaml:"cache_ttl_seconds"`
}

// PipelineConfig tunes the ingestion worker.
type PipelineConfig struct {
	QueueSize   int   `yaml:"queue_size"`
	Workers     int   `yaml:"workers"`
	MaxFileSize int64 `yaml:"max_file_size_bytes"`
}

type Config struct {
	Addr       AddrConfig       `yaml:"addr"`
	Log        LogConfig        `yaml:"log"`
	Auth       AuthConfig       `yaml:"auth"`
	DataSource DataSourceConfig `yaml:"datasource"`
	Schema     SchemaConfig     `yaml:"schema"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
}
