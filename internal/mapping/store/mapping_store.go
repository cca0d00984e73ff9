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
	"database/sql"
	"fmt"
	"net/http"

	"github.com/lib/pq"
	"github.com/wso2/xml-ingestion-service/internal/mapping/model"
	"github.com/wso2/xml-ingestion-service/internal/system/database/lock"
	"github.com/wso2/xml-ingestion-service/internal/system/database/provider"
	errors2 "github.com/wso2/xml-ingestion-service/internal/system/errors"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
)

const uniqueViolation = "23505"

const mappingRuleColumns = `rule_id, client_id, interface_id, xml_path, xsd_element, table_name,
	database_field, data_type, is_attribute, description, created_at, updated_at`

const insertMappingRule = `INSERT INTO mapping_rules
	(client_id, interface_id, xml_path, xsd_element, table_name, database_field, data_type,
	 is_attribute, description, created_at, updated_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) RETURNING rule_id`

// All mapping writes serialize per interface through a transaction-scoped
// advisory lock. A writer that cannot take the lock fails immediately with a
// conflict instead of queueing, so a long-running replace cannot stall point
// edits silently.

// CreateMappingRule inserts one rule under the interface lock.
func CreateMappingRule(rule model.MappingRule) (*model.MappingRule, error) {

	err := withInterfaceLock(rule.InterfaceId, errors2.ADD_MAPPING_RULE, func(tx *sql.Tx) error {
		row := tx.QueryRow(insertMappingRule, rule.ClientId, rule.InterfaceId, rule.XmlPath,
			rule.XsdElement, rule.TableName, rule.DatabaseField, rule.DataType, rule.IsAttribute,
			rule.Description, rule.CreatedAt, rule.UpdatedAt)
		if err := row.Scan(&rule.Id); err != nil {
			return classifyWriteError(err, rule, errors2.ADD_MAPPING_RULE)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.GetLogger().Info(fmt.Sprintf("Mapping rule: %d added for interface: %d.", rule.Id,
		rule.InterfaceId))
	return &rule, nil
}

// UpdateMappingRule persists the mutable fields of a rule under the interface
// lock. Returns false when the rule id does not resolve.
func UpdateMappingRule(rule model.MappingRule) (bool, error) {

	var affected int64
	err := withInterfaceLock(rule.InterfaceId, errors2.UPDATE_MAPPING_RULE, func(tx *sql.Tx) error {
		result, err := tx.Exec(`UPDATE mapping_rules SET xml_path=$1, xsd_element=$2, table_name=$3,
			database_field=$4, data_type=$5, is_attribute=$6, description=$7, updated_at=$8
			WHERE rule_id=$9`,
			rule.XmlPath, rule.XsdElement, rule.TableName, rule.DatabaseField, rule.DataType,
			rule.IsAttribute, rule.Description, rule.UpdatedAt, rule.Id)
		if err != nil {
			return classifyWriteError(err, rule, errors2.UPDATE_MAPPING_RULE)
		}
		affected, _ = result.RowsAffected()
		return nil
	})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteMappingRule removes one rule under the interface lock. Returns false
// when the rule id does not resolve.
func DeleteMappingRule(ruleId int64, interfaceId int64) (bool, error) {

	var affected int64
	err := withInterfaceLock(interfaceId, errors2.DELETE_MAPPING_RULE, func(tx *sql.Tx) error {
		result, err := tx.Exec(`DELETE FROM mapping_rules WHERE rule_id = $1`, ruleId)
		if err != nil {
			errorMsg := fmt.Sprintf("Failed to delete mapping rule: %d.", ruleId)
			log.GetLogger().Debug(errorMsg, log.Error(err))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.DELETE_MAPPING_RULE.Code,
				Message:     errors2.DELETE_MAPPING_RULE.Message,
				Description: errorMsg,
			}, err)
		}
		affected, _ = result.RowsAffected()
		return nil
	})
	if err != nil {
		return false, err
	}
	if affected > 0 {
		log.GetLogger().Info(fmt.Sprintf("Mapping rule: %d deleted successfully.", ruleId))
	}
	return affected > 0, nil
}

// ReplaceMappingRules swaps the interface's whole rule set in one
// transaction. Either every incoming rule is persisted or the previous
// configuration survives untouched.
func ReplaceMappingRules(interfaceId int64, rules []model.MappingRule) ([]model.MappingRule, error) {

	replaced := make([]model.MappingRule, 0, len(rules))
	err := withInterfaceLock(interfaceId, errors2.REPLACE_MAPPING_RULES, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM mapping_rules WHERE interface_id = $1`, interfaceId); err != nil {
			errorMsg := fmt.Sprintf("Failed to clear mapping rules of interface: %d.", interfaceId)
			log.GetLogger().Debug(errorMsg, log.Error(err))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.REPLACE_MAPPING_RULES.Code,
				Message:     errors2.REPLACE_MAPPING_RULES.Message,
				Description: errorMsg,
			}, err)
		}

		for _, rule := range rules {
			row := tx.QueryRow(insertMappingRule, rule.ClientId, rule.InterfaceId, rule.XmlPath,
				rule.XsdElement, rule.TableName, rule.DatabaseField, rule.DataType, rule.IsAttribute,
				rule.Description, rule.CreatedAt, rule.UpdatedAt)
			if err := row.Scan(&rule.Id); err != nil {
				return classifyWriteError(err, rule, errors2.REPLACE_MAPPING_RULES)
			}
			replaced = append(replaced, rule)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.GetLogger().Info(fmt.Sprintf("Mapping configuration of interface: %d replaced with %d rule(s).",
		interfaceId, len(replaced)))
	return replaced, nil
}

// GetMappingRulesByInterface fetches the interface's rules ordered by id.
func GetMappingRulesByInterface(interfaceId int64) ([]model.MappingRule, error) {

	query := fmt.Sprintf(`SELECT %s FROM mapping_rules WHERE interface_id = $1 ORDER BY rule_id`,
		mappingRuleColumns)
	return fetchMappingRules(query, interfaceId)
}

// GetMappingRule fetches one rule by id. Returns nil when it does not exist.
func GetMappingRule(ruleId int64) (*model.MappingRule, error) {

	query := fmt.Sprintf(`SELECT %s FROM mapping_rules WHERE rule_id = $1`, mappingRuleColumns)
	rules, err := fetchMappingRules(query, ruleId)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, nil
	}
	return &rules[0], nil
}

// GetMappingRuleByPath fetches the rule bound to the xml path on the
// interface. Returns nil when no rule is bound.
func GetMappingRuleByPath(interfaceId int64, xmlPath string) (*model.MappingRule, error) {

	query := fmt.Sprintf(`SELECT %s FROM mapping_rules WHERE interface_id = $1 AND xml_path = $2`,
		mappingRuleColumns)
	rules, err := fetchMappingRules(query, interfaceId, xmlPath)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, nil
	}
	return &rules[0], nil
}

// withInterfaceLock runs fn inside a transaction that holds the interface's
// advisory lock, committing on success and rolling back on any error.
func withInterfaceLock(interfaceId int64, op errors2.ErrorMessage, fn func(tx *sql.Tx) error) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for writing mapping rules of interface: %d.",
			interfaceId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        op.Code,
			Message:     op.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for interface: %d.", interfaceId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        op.Code,
			Message:     op.Message,
			Description: errorMsg,
		}, err)
	}

	acquired, err := lock.AcquireTx(tx, interfaceId)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if !acquired {
		_ = tx.Rollback()
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:    errors2.CONFIG_REPLACE_CONFLICT.Code,
			Message: errors2.CONFIG_REPLACE_CONFLICT.Message,
			Description: fmt.Sprintf("The mapping configuration of interface %d is locked by another save.",
				interfaceId),
		}, http.StatusConflict)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		errorMsg := fmt.Sprintf("Failed to commit mapping rule write for interface: %d.", interfaceId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        op.Code,
			Message:     op.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

func classifyWriteError(err error, rule model.MappingRule, op errors2.ErrorMessage) error {

	if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:    errors2.DUPLICATE_BINDING.Code,
			Message: errors2.DUPLICATE_BINDING.Message,
			Description: fmt.Sprintf("A mapping rule for path '%s' already exists on interface %d.",
				rule.XmlPath, rule.InterfaceId),
		}, http.StatusConflict)
	}
	errorMsg := fmt.Sprintf("Failed to write mapping rule for path '%s' on interface: %d.", rule.XmlPath,
		rule.InterfaceId)
	log.GetLogger().Debug(errorMsg, log.Error(err))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        op.Code,
		Message:     op.Message,
		Description: errorMsg,
	}, err)
}

func fetchMappingRules(query string, args ...interface{}) ([]model.MappingRule, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for fetching mapping rules."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_MAPPING_RULES.Code,
			Message:     errors2.FETCH_MAPPING_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		errorMsg := "Failed to fetch mapping rules."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_MAPPING_RULES.Code,
			Message:     errors2.FETCH_MAPPING_RULES.Message,
			Description: errorMsg,
		}, err)
	}

	rules := []model.MappingRule{}
	for _, row := range results {
		var rule model.MappingRule
		rule.Id = row["rule_id"].(int64)
		rule.ClientId = row["client_id"].(int64)
		rule.InterfaceId = row["interface_id"].(int64)
		rule.XmlPath = row["xml_path"].(string)
		rule.XsdElement = row["xsd_element"].(string)
		rule.TableName = row["table_name"].(string)
		rule.DatabaseField = row["database_field"].(string)
		rule.DataType = row["data_type"].(string)
		rule.IsAttribute = row["is_attribute"].(bool)
		rule.Description = row["description"].(string)
		rule.CreatedAt = row["created_at"].(int64)
		rule.UpdatedAt = row["updated_at"].(int64)
		rules = append(rules, rule)
	}
	return rules, nil
}
