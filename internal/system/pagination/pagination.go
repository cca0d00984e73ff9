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

package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

// Page describes an offset-based window over a filtered result set. Page
// numbers start at zero.
type Page struct {
	Number int
	Size   int
}

// Offset returns the row offset of the page start.
func (p Page) Offset() int {
	return p.Number * p.Size
}

// OrDefault returns the page with the default size applied when unset, so
// callers that bypass ParsePage still get a bounded window.
func (p Page) OrDefault() Page {
	if p.Size <= 0 {
		p.Size = defaultPageSize
	}
	return p
}

// ParsePage reads the page/pageSize query parameters. Missing values default
// to the first page with the default size; malformed or negative values are
// rejected.
func ParsePage(r *http.Request) (Page, error) {
	page := Page{Number: 0, Size: defaultPageSize}

	if raw := r.URL.Query().Get("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return Page{}, fmt.Errorf("invalid page")
		}
		page.Number = v
	}

	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return Page{}, fmt.Errorf("invalid pageSize")
		}
		if v > maxPageSize {
			v = maxPageSize
		}
		page.Size = v
	}

	return page, nil
}
