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

import (
	"github.com/wso2/xml-ingestion-service/internal/system/pagination"
)

// ProcessedFile is one entry of the ingestion audit trail. Entries are
// append-only: a file enters as PROCESSING and moves exactly once to
// COMPLETED or FAILED.
type ProcessedFile struct {
	FileId           string `json:"file_id"`
	Filename         string `json:"filename"`
	ClientId         int64  `json:"client_id"`
	InterfaceId      int64  `json:"interface_id"`
	Status           string `json:"status"`
	RecordsProcessed int64  `json:"records_processed"`
	ErrorMessage     string `json:"error_message,omitempty"`
	CreatedAt        int64  `json:"created_at"`
	ProcessedDate    int64  `json:"processed_date,omitempty"`
}

// FileQuery carries the registry filters. Zero values mean "no filter"; set
// filters combine conjunctively. Date bounds are inclusive unix seconds
// matched against the processed date.
type FileQuery struct {
	ClientId    int64
	InterfaceId int64
	Status      string
	StartDate   int64
	EndDate     int64
	Page        pagination.Page
}

// FilePage is one page of registry results together with the total match
// count, so clients can paginate without a second round trip.
type FilePage struct {
	Files      []ProcessedFile `json:"files"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
}
