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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyIsDeterministic(t *testing.T) {

	a, err := GenerateKey(42)
	require.NoError(t, err)
	b, err := GenerateKey(42)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateKeyDiffersPerInterface(t *testing.T) {

	a, err := GenerateKey(1)
	require.NoError(t, err)
	b, err := GenerateKey(2)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
