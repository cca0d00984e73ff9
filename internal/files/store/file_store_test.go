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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wso2/xml-ingestion-service/internal/files/model"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
	"github.com/wso2/xml-ingestion-service/internal/system/pagination"
)

func TestBuildFilePredicateEmptyQuery(t *testing.T) {

	where, args := buildFilePredicate(model.FileQuery{Page: pagination.Page{Size: 20}})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildFilePredicateSingleFilter(t *testing.T) {

	where, args := buildFilePredicate(model.FileQuery{ClientId: 7})
	assert.Equal(t, " WHERE client_id = $1", where)
	assert.Equal(t, []interface{}{int64(7)}, args)
}

func TestBuildFilePredicateCombinesFiltersConjunctively(t *testing.T) {

	where, args := buildFilePredicate(model.FileQuery{
		ClientId:    1,
		InterfaceId: 10,
		Status:      constants.FileStatusCompleted,
		StartDate:   1700000000,
		EndDate:     1700086400,
	})

	assert.Equal(t, " WHERE client_id = $1 AND interface_id = $2 AND status = $3"+
		" AND processed_date >= $4 AND processed_date <= $5", where)
	assert.Equal(t, []interface{}{int64(1), int64(10), constants.FileStatusCompleted,
		int64(1700000000), int64(1700086400)}, args)
}

func TestBuildFilePredicateDateBoundsAreInclusive(t *testing.T) {

	where, _ := buildFilePredicate(model.FileQuery{StartDate: 5, EndDate: 5})
	assert.Contains(t, where, ">= $1")
	assert.Contains(t, where, "<= $2")
}
