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

package errors

const errorPrefix = "XIS-"

var (
	// Server error codes

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Unable to initialize database client.",
	}

	LOCK_ACQUIRE = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Advisory lock acquisition failed.",
	}

	LOCK_RELEASE = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while releasing the lock.",
	}

	LOCK_KEY_GEN = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error generating advisory lock key.",
	}

	LOCK_RESULT_INVALID = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Invalid response from advisory lock query.",
	}

	ADD_CLIENT = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while adding client.",
	}

	FETCH_CLIENTS = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while fetching client(s).",
	}

	UPDATE_CLIENT = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while updating client.",
	}

	DELETE_CLIENT = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while deleting client.",
	}

	ADD_INTERFACE = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while adding interface.",
	}

	FETCH_INTERFACES = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while fetching interface(s).",
	}

	UPDATE_INTERFACE = ErrorMessage{
		Code:    errorPrefix + "15012",
		Message: "Error while updating interface.",
	}

	DELETE_INTERFACE = ErrorMessage{
		Code:    errorPrefix + "15013",
		Message: "Error while deleting interface.",
	}

	ADD_MAPPING_RULE = ErrorMessage{
		Code:    errorPrefix + "15014",
		Message: "Error while adding mapping rule.",
	}

	FETCH_MAPPING_RULES = ErrorMessage{
		Code:    errorPrefix + "15015",
		Message: "Error while fetching mapping rule(s).",
	}

	UPDATE_MAPPING_RULE = ErrorMessage{
		Code:    errorPrefix + "15016",
		Message: "Error while updating mapping rule.",
	}

	DELETE_MAPPING_RULE = ErrorMessage{
		Code:    errorPrefix + "15017",
		Message: "Error while deleting mapping rule.",
	}

	REPLACE_MAPPING_RULES = ErrorMessage{
		Code:    errorPrefix + "15018",
		Message: "Error while replacing mapping configuration.",
	}

	ADD_PROCESSED_FILE = ErrorMessage{
		Code:    errorPrefix + "15019",
		Message: "Error while recording processed file.",
	}

	FETCH_PROCESSED_FILES = ErrorMessage{
		Code:    errorPrefix + "15020",
		Message: "Error while fetching processed file(s).",
	}

	UPDATE_PROCESSED_FILE = ErrorMessage{
		Code:    errorPrefix + "15021",
		Message: "Error while updating processed file.",
	}

	CATALOG_QUERY = ErrorMessage{
		Code:    errorPrefix + "15022",
		Message: "Error while querying the relational catalog.",
	}

	TRANSFORM_WRITE = ErrorMessage{
		Code:    errorPrefix + "15023",
		Message: "Error while writing transformed records.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11001",
		Message: "Invalid body format.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "11002",
		Message:     "Unauthorized",
		Description: "Authorization failure. Authorization information was invalid or missing from your request.",
	}

	FORBIDDEN = ErrorMessage{
		Code:        errorPrefix + "11003",
		Message:     "Forbidden",
		Description: "You do not have permission to access this resource.",
	}

	CLIENT_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11004",
		Message:     "Client not found.",
		Description: "No client record found for the given client id.",
	}

	INTERFACE_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11005",
		Message:     "Interface not found.",
		Description: "No interface record found for the given interface id.",
	}

	MAPPING_RULE_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11006",
		Message:     "Mapping rule not found.",
		Description: "No mapping rule found for the given rule id.",
	}

	DUPLICATE_BINDING = ErrorMessage{
		Code:        errorPrefix + "11007",
		Message:     "Duplicate binding.",
		Description: "A mapping rule for this XML path already exists on the interface.",
	}

	DUPLICATE_CLIENT_NAME = ErrorMessage{
		Code:        errorPrefix + "11008",
		Message:     "Client name already in use.",
		Description: "A client with the given name already exists.",
	}

	DUPLICATE_INTERFACE_NAME = ErrorMessage{
		Code:        errorPrefix + "11009",
		Message:     "Interface name already in use.",
		Description: "An interface with the given name already exists for this client.",
	}

	VALIDATION_ERROR = ErrorMessage{
		Code:    errorPrefix + "11010",
		Message: "Validation failed.",
	}

	INVALID_CONFIGURATION = ErrorMessage{
		Code:    errorPrefix + "11011",
		Message: "Mapping configuration validation failed.",
	}

	SCHEMA_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11012",
		Message:     "Schema not found.",
		Description: "The schema referenced by the interface could not be resolved.",
	}

	SCHEMA_INVALID = ErrorMessage{
		Code:        errorPrefix + "11013",
		Message:     "Schema invalid.",
		Description: "The schema referenced by the interface is not a well-formed XSD document.",
	}

	CATALOG_UNAVAILABLE = ErrorMessage{
		Code:        errorPrefix + "11014",
		Message:     "Relational catalog unavailable.",
		Description: "The target schema could not be resolved for the tenant.",
	}

	CLIENT_HAS_INTERFACES = ErrorMessage{
		Code:        errorPrefix + "11015",
		Message:     "Client has active interfaces.",
		Description: "Deactivate the interfaces owned by this client before deleting it.",
	}

	INTERFACE_HAS_RULES = ErrorMessage{
		Code:        errorPrefix + "11016",
		Message:     "Interface has mapping rules.",
		Description: "Deactivate the interface before deleting it while mapping rules exist.",
	}

	INTERFACE_INACTIVE = ErrorMessage{
		Code:        errorPrefix + "11017",
		Message:     "Interface is not active.",
		Description: "Uploads are only accepted against active interfaces.",
	}

	PROCESSED_FILE_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11019",
		Message:     "Processed file not found.",
		Description: "No registry entry found for the given file id.",
	}

	INGESTION_QUEUE_FULL = ErrorMessage{
		Code:        errorPrefix + "11020",
		Message:     "Ingestion queue at capacity.",
		Description: "The service cannot accept more uploads right now.",
	}

	CONFIG_REPLACE_CONFLICT = ErrorMessage{
		Code:        errorPrefix + "11018",
		Message:     "Mapping configuration is being modified concurrently.",
		Description: "Another save operation holds the configuration lock for this interface. Retry shortly.",
	}
)
