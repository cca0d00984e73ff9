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

// Submission is one accepted upload queued for ingestion. The registry entry
// already exists in PROCESSING state when a submission enters the queue.
type Submission struct {
	FileId      string
	Filename    string
	ClientId    int64
	InterfaceId int64
	Payload     []byte
}

// TableRow is one transformed record destined for a single target table.
type TableRow struct {
	TableName string
	Values    map[string]string
}
