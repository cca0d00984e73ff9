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

package service

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
	mappingmodel "github.com/wso2/xml-ingestion-service/internal/mapping/model"
	"github.com/wso2/xml-ingestion-service/internal/pipeline/model"
)

// The transformer walks an XML document once and turns each child element of
// the document root into one record. Rule paths address nodes from the root,
// so within a record every matched value is keyed by its full path. Bound
// attributes on the document root itself apply to every record. A record
// yields one row per target table that received at least one value.

// TransformResult carries the rows extracted from one document.
type TransformResult struct {
	Rows             []model.TableRow
	RecordsProcessed int64
}

// Transform applies the interface's mapping rules to the XML payload.
// Returns an error when the document is not well-formed or contains no
// records.
func Transform(payload []byte, rules []mappingmodel.MappingRule) (*TransformResult, error) {

	if len(rules) == 0 {
		return nil, errors.New("no mapping rules are configured for the interface")
	}

	elementRules := map[string]*mappingmodel.MappingRule{}
	attributeRules := map[string]*mappingmodel.MappingRule{}
	for i := range rules {
		if rules[i].IsAttribute {
			attributeRules[rules[i].XmlPath] = &rules[i]
		} else {
			elementRules[rules[i].XmlPath] = &rules[i]
		}
	}

	decoder := xml.NewDecoder(bytes.NewReader(payload))
	var stack []string
	rootValues := map[string]string{}
	var values map[string]string
	var result TransformResult

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "decoding xml payload")
		}

		switch t := token.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
			if len(stack) == 2 {
				// New record boundary, seeded with the root's attributes.
				values = map[string]string{}
				for rootPath, value := range rootValues {
					values[rootPath] = value
				}
			}
			path := strings.Join(stack, "/")
			for _, attr := range t.Attr {
				attrPath := path + "/@" + attr.Name.Local
				if _, bound := attributeRules[attrPath]; !bound {
					continue
				}
				if len(stack) == 1 {
					rootValues[attrPath] = attr.Value
				} else if values != nil {
					values[attrPath] = attr.Value
				}
			}

		case xml.CharData:
			if values == nil || len(stack) < 2 {
				continue
			}
			path := strings.Join(stack, "/")
			if _, bound := elementRules[path]; bound {
				text := strings.TrimSpace(string(t))
				if text != "" {
					values[path] += text
				}
			}

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, errors.New("unbalanced xml document")
			}
			if len(stack) == 2 {
				result.Rows = append(result.Rows, buildRows(values, rules)...)
				result.RecordsProcessed++
				values = nil
			}
			stack = stack[:len(stack)-1]
		}
	}

	if result.RecordsProcessed == 0 {
		return nil, errors.New("document contains no records under the root element")
	}
	return &result, nil
}

// buildRows groups the record's matched values by target table.
func buildRows(values map[string]string, rules []mappingmodel.MappingRule) []model.TableRow {

	byTable := map[string]map[string]string{}
	var tableOrder []string
	for _, rule := range rules {
		value, matched := values[rule.XmlPath]
		if !matched {
			continue
		}
		if _, known := byTable[rule.TableName]; !known {
			byTable[rule.TableName] = map[string]string{}
			tableOrder = append(tableOrder, rule.TableName)
		}
		byTable[rule.TableName][rule.DatabaseField] = value
	}

	rows := make([]model.TableRow, 0, len(tableOrder))
	for _, tableName := range tableOrder {
		rows = append(rows, model.TableRow{TableName: tableName, Values: byTable[tableName]})
	}
	return rows
}
