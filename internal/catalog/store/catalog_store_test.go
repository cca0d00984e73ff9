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
)

func TestPrefixPattern(t *testing.T) {

	assert.Equal(t, "orders%", prefixPattern("orders"))
	assert.Equal(t, "%", prefixPattern(""))

	// LIKE wildcards inside the prefix must match literally.
	assert.Equal(t, `asn\_header%`, prefixPattern("asn_header"))
	assert.Equal(t, `100\%\_sales%`, prefixPattern("100%_sales"))
}
