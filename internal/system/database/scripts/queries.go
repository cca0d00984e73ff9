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

package scripts

// BootstrapDDL creates the service tables when they do not exist yet.
// Processed files are an append-only audit trail: deleting a client,
// interface or mapping rule never cascades into them.
const BootstrapDDL = `
CREATE TABLE IF NOT EXISTS clients (
    client_id   BIGSERIAL PRIMARY KEY,
    name        TEXT NOT NULL UNIQUE,
    code        TEXT NOT NULL DEFAULT '',
    status      TEXT NOT NULL DEFAULT 'PENDING',
    description TEXT NOT NULL DEFAULT '',
    created_at  BIGINT NOT NULL,
    updated_at  BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS interfaces (
    interface_id BIGSERIAL PRIMARY KEY,
    client_id    BIGINT NOT NULL REFERENCES clients (client_id),
    name         TEXT NOT NULL,
    content_type TEXT NOT NULL DEFAULT 'application/xml',
    schema_path  TEXT NOT NULL DEFAULT '',
    root_element TEXT NOT NULL DEFAULT '',
    namespace    TEXT NOT NULL DEFAULT '',
    status       TEXT NOT NULL DEFAULT 'ACTIVE',
    created_at   BIGINT NOT NULL,
    updated_at   BIGINT NOT NULL,
    UNIQUE (client_id, name)
);

CREATE TABLE IF NOT EXISTS mapping_rules (
    rule_id        BIGSERIAL PRIMARY KEY,
    client_id      BIGINT NOT NULL REFERENCES clients (client_id),
    interface_id   BIGINT NOT NULL REFERENCES interfaces (interface_id),
    xml_path       TEXT NOT NULL,
    xsd_element    TEXT NOT NULL DEFAULT '',
    table_name     TEXT NOT NULL,
    database_field TEXT NOT NULL,
    data_type      TEXT NOT NULL DEFAULT '',
    is_attribute   BOOLEAN NOT NULL DEFAULT FALSE,
    description    TEXT NOT NULL DEFAULT '',
    created_at     BIGINT NOT NULL,
    updated_at     BIGINT NOT NULL,
    UNIQUE (interface_id, xml_path)
);

CREATE TABLE IF NOT EXISTS processed_files (
    file_id           TEXT PRIMARY KEY,
    filename          TEXT NOT NULL,
    client_id         BIGINT NOT NULL,
    interface_id      BIGINT NOT NULL,
    status            TEXT NOT NULL DEFAULT 'PROCESSING',
    records_processed BIGINT NOT NULL DEFAULT 0,
    error_message     TEXT NOT NULL DEFAULT '',
    created_at        BIGINT NOT NULL,
    processed_date    BIGINT
);

CREATE INDEX IF NOT EXISTS idx_processed_files_scope
    ON processed_files (client_id, interface_id, status, processed_date);
`
