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

package lock

import (
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/wso2/xml-ingestion-service/internal/system/errors"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
)

// Mapping configuration writes for one interface must not interleave: a
// wholesale replace and a point edit racing on the same interface could
// otherwise corrupt the rule set. Writers take a transaction-scoped postgres
// advisory lock keyed on the interface id; the lock is released when the
// transaction commits or rolls back.

const lockNamespace = "mapping-config"

// GenerateKey hashes the namespaced interface id into the bigint key space
// used by postgres advisory locks.
func GenerateKey(interfaceId int64) (int64, error) {

	logger := log.GetLogger()
	h := fnv.New64a()
	_, err := h.Write([]byte(fmt.Sprintf("%s:%d", lockNamespace, interfaceId)))
	if err != nil {
		errorMsg := fmt.Sprintf("failed to hash lock key for interface: %d", interfaceId)
		logger.Debug(errorMsg, log.Error(err))
		return 0, errors.NewServerError(errors.ErrorMessage{
			Code:        errors.LOCK_KEY_GEN.Code,
			Message:     errors.LOCK_KEY_GEN.Message,
			Description: errorMsg,
		}, err)
	}
	return int64(h.Sum64()), nil
}

// AcquireTx takes the advisory lock for the interface inside the given
// transaction. Returns false without error when another transaction holds it.
func AcquireTx(tx *sql.Tx, interfaceId int64) (bool, error) {

	logger := log.GetLogger()
	lockID, err := GenerateKey(interfaceId)
	if err != nil {
		return false, err
	}

	row := tx.QueryRow("SELECT pg_try_advisory_xact_lock($1)", lockID)
	var acquired sql.NullBool
	if err := row.Scan(&acquired); err != nil {
		errorMsg := fmt.Sprintf("failed to execute pg_try_advisory_xact_lock for interface: %d", interfaceId)
		logger.Error(errorMsg, log.Error(err))
		return false, errors.NewServerError(errors.ErrorMessage{
			Code:        errors.LOCK_ACQUIRE.Code,
			Message:     errors.LOCK_ACQUIRE.Message,
			Description: errorMsg,
		}, err)
	}

	if !acquired.Valid {
		errorMsg := fmt.Sprintf("pg_try_advisory_xact_lock returned an invalid result for interface: %d",
			interfaceId)
		logger.Error(errorMsg)
		return false, errors.NewServerError(errors.ErrorMessage{
			Code:        errors.LOCK_RESULT_INVALID.Code,
			Message:     errors.LOCK_RESULT_INVALID.Message,
			Description: errorMsg,
		}, nil)
	}

	logger.Debug(fmt.Sprintf("Advisory lock %d acquired=%t for interface: %d", lockID, acquired.Bool,
		interfaceId))
	return acquired.Bool, nil
}
