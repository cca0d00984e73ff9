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
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/files/processed", nil)
	page, err := ParsePage(r)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Number)
	assert.Equal(t, defaultPageSize, page.Size)
	assert.Equal(t, 0, page.Offset())
}

func TestParsePage_Explicit(t *testing.T) {
	r := httptest.NewRequest("GET", "/files/processed?page=3&pageSize=25", nil)
	page, err := ParsePage(r)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Number)
	assert.Equal(t, 25, page.Size)
	assert.Equal(t, 75, page.Offset())
}

func TestParsePage_SizeCapped(t *testing.T) {
	r := httptest.NewRequest("GET", "/files/processed?pageSize=5000", nil)
	page, err := ParsePage(r)
	require.NoError(t, err)
	assert.Equal(t, maxPageSize, page.Size)
}

func TestParsePage_NegativePage(t *testing.T) {
	r := httptest.NewRequest("GET", "/files/processed?page=-1", nil)
	_, err := ParsePage(r)
	assert.Error(t, err)
}

func TestParsePage_ZeroPageSize(t *testing.T) {
	r := httptest.NewRequest("GET", "/files/processed?pageSize=0", nil)
	_, err := ParsePage(r)
	assert.Error(t, err)
}

func TestParsePage_Malformed(t *testing.T) {
	r := httptest.NewRequest("GET", "/files/processed?page=abc", nil)
	_, err := ParsePage(r)
	assert.Error(t, err)
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, defaultPageSize, Page{}.OrDefault().Size)
	assert.Equal(t, 7, Page{Size: 7}.OrDefault().Size)
	assert.Equal(t, 2, Page{Number: 2}.OrDefault().Number)
}
