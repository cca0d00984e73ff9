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

package authz

import (
	"fmt"
	"slices"

	"github.com/wso2/xml-ingestion-service/internal/system/authn"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
)

// requiredRoles maps each guarded operation to the roles allowed to perform
// it. Reads and uploads are open to any authenticated role; mutations on
// clients, interfaces and mapping configuration need the admin role.
var requiredRoles = map[string][]string{
	constants.OpReadConfiguration:  {constants.RoleAdmin, constants.RoleOperator},
	constants.OpReadFiles:          {constants.RoleAdmin, constants.RoleOperator},
	constants.OpUploadFiles:        {constants.RoleAdmin, constants.RoleOperator},
	constants.OpWriteClients:       {constants.RoleAdmin},
	constants.OpWriteInterfaces:    {constants.RoleAdmin},
	constants.OpWriteMappingConfig: {constants.RoleAdmin},
}

// ValidatePermission checks whether the principal's roles permit the operation.
func ValidatePermission(principal *authn.Principal, operation string) bool {

	logger := log.GetLogger()
	if principal == nil || len(principal.Roles) == 0 {
		logger.Debug(fmt.Sprintf("No roles available for operation: %s", operation))
		return false
	}

	allowed, ok := requiredRoles[operation]
	if !ok {
		logger.Debug(fmt.Sprintf("Unknown operation requested: %s", operation))
		return false
	}

	for _, role := range principal.Roles {
		if slices.Contains(allowed, role) {
			return true
		}
	}
	return false
}
