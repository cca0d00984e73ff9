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

package constants

const ApiBasePath = "/api"

// Client lifecycle statuses.
const (
	ClientStatusActive    = "ACTIVE"
	ClientStatusInactive  = "INACTIVE"
	ClientStatusSuspended = "SUSPENDED"
	ClientStatusPending   = "PENDING"
)

var AllowedClientStatuses = map[string]bool{
	ClientStatusActive:    true,
	ClientStatusInactive:  true,
	ClientStatusSuspended: true,
	ClientStatusPending:   true,
}

// ContentTypeXML is the only payload content type currently ingested.
const ContentTypeXML = "application/xml"

// Interface lifecycle statuses.
const (
	InterfaceStatusActive   = "ACTIVE"
	InterfaceStatusInactive = "INACTIVE"
)

var AllowedInterfaceStatuses = map[string]bool{
	InterfaceStatusActive:   true,
	InterfaceStatusInactive: true,
}

// Processed file statuses. Transitions are monotonic: PROCESSING is the only
// non-terminal state.
const (
	FileStatusProcessing = "PROCESSING"
	FileStatusCompleted  = "COMPLETED"
	FileStatusFailed     = "FAILED"
)

var AllowedFileStatuses = map[string]bool{
	FileStatusProcessing: true,
	FileStatusCompleted:  true,
	FileStatusFailed:     true,
}

// Roles known to the authorization layer.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// Operations guarded by authorization. Mutations on interfaces and mapping
// configuration require the admin role; everything else only needs an
// authenticated principal.
const (
	OpReadConfiguration  = "configuration:read"
	OpWriteClients       = "clients:write"
	OpWriteInterfaces    = "interfaces:write"
	OpWriteMappingConfig = "mapping-configuration:write"
	OpUploadFiles        = "files:upload"
	OpReadFiles          = "files:read"
)

// Query parameter names shared across handlers.
const (
	ParamClientId    = "clientId"
	ParamInterfaceId = "interfaceId"
	ParamStatus      = "status"
	ParamStartDate   = "startDate"
	ParamEndDate     = "endDate"
	ParamPage        = "page"
	ParamPageSize    = "pageSize"
)

// DefaultQueueSize is the fallback capacity of the ingestion queue when the
// deployment file does not set one.
const DefaultQueueSize = 100

// DefaultMaxFileSize caps uploads at 10 MiB unless configured otherwise.
const DefaultMaxFileSize = int64(10 * 1024 * 1024)
