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

package model

// Interface is a named schema contract owned by exactly one client. Uploads
// and mapping rules are always scoped by the (client, interface) pair.
type Interface struct {
	Id          int64  `json:"id,omitempty"`
	ClientId    int64  `json:"client_id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type,omitempty"`
	SchemaPath  string `json:"schema_path,omitempty"`
	RootElement string `json:"root_element,omitempty"`
	Namespace   string `json:"namespace,omitempty"`
	Status      string `json:"status"`
	CreatedAt   int64  `json:"created_at,omitempty"`
	UpdatedAt   int64  `json:"updated_at,omitempty"`
}
