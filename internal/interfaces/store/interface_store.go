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

package store

import (
	"fmt"
	"net/http"

	"github.com/lib/pq"
	"github.com/wso2/xml-ingestion-service/internal/interfaces/model"
	"github.com/wso2/xml-ingestion-service/internal/system/database/provider"
	errors2 "github.com/wso2/xml-ingestion-service/internal/system/errors"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
)

const uniqueViolation = "23505"

const interfaceColumns = `interface_id, client_id, name, content_type, schema_path, root_element,
	namespace, status, created_at, updated_at`

// AddInterface inserts a new interface and returns it with the generated id.
func AddInterface(iface model.Interface) (*model.Interface, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for adding interface: %s", iface.Name)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_INTERFACE.Code,
			Message:     errors2.ADD_INTERFACE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `INSERT INTO interfaces
		(client_id, name, content_type, schema_path, root_element, namespace, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING interface_id`

	results, err := dbClient.ExecuteQuery(query, iface.ClientId, iface.Name, iface.ContentType,
		iface.SchemaPath, iface.RootElement, iface.Namespace, iface.Status, iface.CreatedAt,
		iface.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return nil, errors2.NewClientError(errors2.ErrorMessage{
				Code:    errors2.DUPLICATE_INTERFACE_NAME.Code,
				Message: errors2.DUPLICATE_INTERFACE_NAME.Message,
				Description: fmt.Sprintf("An interface named '%s' already exists for client %d.",
					iface.Name, iface.ClientId),
			}, http.StatusConflict)
		}
		errorMsg := fmt.Sprintf("Failed on inserting interface: %s", iface.Name)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_INTERFACE.Code,
			Message:     errors2.ADD_INTERFACE.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 1 {
		iface.Id = results[0]["interface_id"].(int64)
	}

	logger.Info(fmt.Sprintf("Interface: %s added successfully with id: %d.", iface.Name, iface.Id))
	return &iface, nil
}

// GetInterfacesByClient fetches the interfaces owned by the client, ordered
// by id. Interfaces are always resolved through their owning client; there is
// no cross-client listing cache.
func GetInterfacesByClient(clientId int64) ([]model.Interface, error) {

	query := fmt.Sprintf(`SELECT %s FROM interfaces WHERE client_id = $1 ORDER BY interface_id`,
		interfaceColumns)
	return fetchInterfaces(query, clientId)
}

// GetInterfaces fetches all interfaces ordered by id.
func GetInterfaces() ([]model.Interface, error) {

	query := fmt.Sprintf(`SELECT %s FROM interfaces ORDER BY interface_id`, interfaceColumns)
	return fetchInterfaces(query)
}

// GetInterface fetches one interface by id. Returns nil when it does not exist.
func GetInterface(interfaceId int64) (*model.Interface, error) {

	query := fmt.Sprintf(`SELECT %s FROM interfaces WHERE interface_id = $1`, interfaceColumns)
	interfaces, err := fetchInterfaces(query, interfaceId)
	if err != nil {
		return nil, err
	}
	if len(interfaces) == 0 {
		return nil, nil
	}
	return &interfaces[0], nil
}

// UpdateInterface persists the mutable interface fields. Returns false when
// the id does not resolve.
func UpdateInterface(iface model.Interface) (bool, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for updating interface: %d.", iface.Id)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_INTERFACE.Code,
			Message:     errors2.UPDATE_INTERFACE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `UPDATE interfaces SET name=$1, content_type=$2, schema_path=$3, root_element=$4,
		namespace=$5, status=$6, updated_at=$7 WHERE interface_id=$8`

	result, err := dbClient.Exec(query, iface.Name, iface.ContentType, iface.SchemaPath,
		iface.RootElement, iface.Namespace, iface.Status, iface.UpdatedAt, iface.Id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return false, errors2.NewClientError(errors2.ErrorMessage{
				Code:    errors2.DUPLICATE_INTERFACE_NAME.Code,
				Message: errors2.DUPLICATE_INTERFACE_NAME.Message,
				Description: fmt.Sprintf("An interface named '%s' already exists for this client.",
					iface.Name),
			}, http.StatusConflict)
		}
		errorMsg := fmt.Sprintf("Failed to update interface: %d.", iface.Id)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_INTERFACE.Code,
			Message:     errors2.UPDATE_INTERFACE.Message,
			Description: errorMsg,
		}, err)
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// DeleteInterface removes one interface row. Returns false when the id does
// not resolve.
func DeleteInterface(interfaceId int64) (bool, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for deleting interface: %d.", interfaceId)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_INTERFACE.Code,
			Message:     errors2.DELETE_INTERFACE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	result, err := dbClient.Exec(`DELETE FROM interfaces WHERE interface_id = $1`, interfaceId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to delete interface: %d.", interfaceId)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_INTERFACE.Code,
			Message:     errors2.DELETE_INTERFACE.Message,
			Description: errorMsg,
		}, err)
	}

	affected, _ := result.RowsAffected()
	if affected > 0 {
		logger.Info(fmt.Sprintf("Interface: %d deleted successfully.", interfaceId))
	}
	return affected > 0, nil
}

// CountMappingRules returns how many mapping rules reference the interface.
func CountMappingRules(interfaceId int64) (int64, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for counting rules of interface: %d.",
			interfaceId)
		logger.Debug(errorMsg, log.Error(err))
		return 0, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_MAPPING_RULES.Code,
			Message:     errors2.FETCH_MAPPING_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(
		`SELECT COUNT(*) AS total FROM mapping_rules WHERE interface_id = $1`, interfaceId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to count mapping rules of interface: %d.", interfaceId)
		logger.Debug(errorMsg, log.Error(err))
		return 0, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_MAPPING_RULES.Code,
			Message:     errors2.FETCH_MAPPING_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0]["total"].(int64), nil
}

func fetchInterfaces(query string, args ...interface{}) ([]model.Interface, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for fetching interfaces."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_INTERFACES.Code,
			Message:     errors2.FETCH_INTERFACES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		errorMsg := "Failed to fetch interfaces."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_INTERFACES.Code,
			Message:     errors2.FETCH_INTERFACES.Message,
			Description: errorMsg,
		}, err)
	}

	interfaces := []model.Interface{}
	for _, row := range results {
		var iface model.Interface
		iface.Id = row["interface_id"].(int64)
		iface.ClientId = row["client_id"].(int64)
		iface.Name = row["name"].(string)
		iface.ContentType = row["content_type"].(string)
		iface.SchemaPath = row["schema_path"].(string)
		iface.RootElement = row["root_element"].(string)
		iface.Namespace = row["namespace"].(string)
		iface.Status = row["status"].(string)
		iface.CreatedAt = row["created_at"].(int64)
		iface.UpdatedAt = row["updated_at"].(int64)
		interfaces = append(interfaces, iface)
	}
	return interfaces, nil
}
