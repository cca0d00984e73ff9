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
	"github.com/wso2/xml-ingestion-service/internal/clients/model"
	"github.com/wso2/xml-ingestion-service/internal/system/database/provider"
	errors2 "github.com/wso2/xml-ingestion-service/internal/system/errors"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
)

const uniqueViolation = "23505"

// AddClient inserts a new client and returns it with the generated id.
func AddClient(client model.Client) (*model.Client, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for adding client: %s", client.Name)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_CLIENT.Code,
			Message:     errors2.ADD_CLIENT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `INSERT INTO clients (name, code, status, description, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6) RETURNING client_id`

	results, err := dbClient.ExecuteQuery(query, client.Name, client.Code, client.Status,
		client.Description, client.CreatedAt, client.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return nil, errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.DUPLICATE_CLIENT_NAME.Code,
				Message:     errors2.DUPLICATE_CLIENT_NAME.Message,
				Description: fmt.Sprintf("A client named '%s' already exists.", client.Name),
			}, http.StatusConflict)
		}
		errorMsg := fmt.Sprintf("Failed on inserting client: %s", client.Name)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_CLIENT.Code,
			Message:     errors2.ADD_CLIENT.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 1 {
		client.Id = results[0]["client_id"].(int64)
	}

	logger.Info(fmt.Sprintf("Client: %s added successfully with id: %d.", client.Name, client.Id))
	return &client, nil
}

// GetClients fetches all clients ordered by id.
func GetClients() ([]model.Client, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for fetching clients."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CLIENTS.Code,
			Message:     errors2.FETCH_CLIENTS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT client_id, name, code, status, description, created_at, updated_at
		FROM clients ORDER BY client_id`

	results, err := dbClient.ExecuteQuery(query)
	if err != nil {
		errorMsg := "Failed to fetch clients."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CLIENTS.Code,
			Message:     errors2.FETCH_CLIENTS.Message,
			Description: errorMsg,
		}, err)
	}

	clients := []model.Client{}
	for _, row := range results {
		clients = append(clients, scanClient(row))
	}
	return clients, nil
}

// GetClient fetches one client by id. Returns nil when it does not exist.
func GetClient(clientId int64) (*model.Client, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching client: %d.", clientId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CLIENTS.Code,
			Message:     errors2.FETCH_CLIENTS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT client_id, name, code, status, description, created_at, updated_at
		FROM clients WHERE client_id = $1`

	results, err := dbClient.ExecuteQuery(query, clientId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch client: %d.", clientId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CLIENTS.Code,
			Message:     errors2.FETCH_CLIENTS.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	client := scanClient(results[0])
	return &client, nil
}

// UpdateClient persists the mutable client fields. Returns false when the id
// does not resolve.
func UpdateClient(client model.Client) (bool, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for updating client: %d.", client.Id)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_CLIENT.Code,
			Message:     errors2.UPDATE_CLIENT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `UPDATE clients SET name=$1, code=$2, status=$3, description=$4, updated_at=$5
		WHERE client_id=$6`

	result, err := dbClient.Exec(query, client.Name, client.Code, client.Status, client.Description,
		client.UpdatedAt, client.Id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return false, errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.DUPLICATE_CLIENT_NAME.Code,
				Message:     errors2.DUPLICATE_CLIENT_NAME.Message,
				Description: fmt.Sprintf("A client named '%s' already exists.", client.Name),
			}, http.StatusConflict)
		}
		errorMsg := fmt.Sprintf("Failed to update client: %d.", client.Id)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_CLIENT.Code,
			Message:     errors2.UPDATE_CLIENT.Message,
			Description: errorMsg,
		}, err)
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// DeleteClient removes one client row. Returns false when the id does not
// resolve.
func DeleteClient(clientId int64) (bool, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for deleting client: %d.", clientId)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_CLIENT.Code,
			Message:     errors2.DELETE_CLIENT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	result, err := dbClient.Exec(`DELETE FROM clients WHERE client_id = $1`, clientId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to delete client: %d.", clientId)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_CLIENT.Code,
			Message:     errors2.DELETE_CLIENT.Message,
			Description: errorMsg,
		}, err)
	}

	affected, _ := result.RowsAffected()
	if affected > 0 {
		logger.Info(fmt.Sprintf("Client: %d deleted successfully.", clientId))
	}
	return affected > 0, nil
}

// CountInterfaces returns how many interfaces reference the client.
func CountInterfaces(clientId int64) (int64, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for counting interfaces of client: %d.",
			clientId)
		logger.Debug(errorMsg, log.Error(err))
		return 0, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_INTERFACES.Code,
			Message:     errors2.FETCH_INTERFACES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(`SELECT COUNT(*) AS total FROM interfaces WHERE client_id = $1`,
		clientId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to count interfaces of client: %d.", clientId)
		logger.Debug(errorMsg, log.Error(err))
		return 0, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_INTERFACES.Code,
			Message:     errors2.FETCH_INTERFACES.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0]["total"].(int64), nil
}

func scanClient(row map[string]interface{}) model.Client {

	var client model.Client
	client.Id = row["client_id"].(int64)
	client.Name = row["name"].(string)
	client.Code = row["code"].(string)
	client.Status = row["status"].(string)
	client.Description = row["description"].(string)
	client.CreatedAt = row["created_at"].(int64)
	client.UpdatedAt = row["updated_at"].(int64)
	return client
}
