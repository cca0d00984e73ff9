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
	"fmt"
	"net/http"
	"strings"
	"time"

	catalogmodel "github.com/wso2/xml-ingestion-service/internal/catalog/model"
	catalogprovider "github.com/wso2/xml-ingestion-service/internal/catalog/provider"
	interfacemodel "github.com/wso2/xml-ingestion-service/internal/interfaces/model"
	interfaceprovider "github.com/wso2/xml-ingestion-service/internal/interfaces/provider"
	"github.com/wso2/xml-ingestion-service/internal/mapping/model"
	"github.com/wso2/xml-ingestion-service/internal/mapping/store"
	schemamodel "github.com/wso2/xml-ingestion-service/internal/schema/model"
	schemaprovider "github.com/wso2/xml-ingestion-service/internal/schema/provider"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
)

// MappingServiceInterface defines the mapping configuration surface.
type MappingServiceInterface interface {
	GetMappingRules(interfaceId int64) ([]model.MappingRule, error)
	CreateMappingRule(rule model.MappingRule) (*model.MappingRule, error)
	UpdateMappingRule(ruleId int64, rule model.MappingRule) (*model.MappingRule, error)
	DeleteMappingRule(ruleId int64) error
	ReplaceMappingRules(interfaceId int64, rules []model.MappingRule) ([]model.MappingRule, error)
	GetMappingSurface(interfaceId int64) (*model.MappingSurface, error)
	BindMapping(rule model.MappingRule) (*model.MappingRule, error)
}

// MappingService is the default implementation of the
// MappingServiceInterface.
type MappingService struct{}

// GetMappingService creates a new instance of MappingService.
func GetMappingService() MappingServiceInterface {

	return &MappingService{}
}

func (ms *MappingService) GetMappingRules(interfaceId int64) ([]model.MappingRule, error) {

	if _, err := resolveInterface(interfaceId); err != nil {
		return nil, err
	}
	return store.GetMappingRulesByInterface(interfaceId)
}

func (ms *MappingService) CreateMappingRule(rule model.MappingRule) (*model.MappingRule, error) {

	iface, err := resolveInterface(rule.InterfaceId)
	if err != nil {
		return nil, err
	}
	rule.ClientId = iface.ClientId

	if err := normalizeRule(&rule); err != nil {
		return nil, err
	}
	snap, err := buildSnapshot(iface)
	if err != nil {
		return nil, err
	}
	if offending := snap.validate([]model.MappingRule{rule}); len(offending) > 0 {
		return nil, invalidConfiguration(offending)
	}

	currentTime := time.Now().UTC().Unix()
	rule.CreatedAt = currentTime
	rule.UpdatedAt = currentTime
	return store.CreateMappingRule(rule)
}

func (ms *MappingService) UpdateMappingRule(ruleId int64, rule model.MappingRule) (
	*model.MappingRule, error) {

	existing, err := store.GetMappingRule(ruleId)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ruleNotFound(ruleId)
	}

	// A rule never migrates between interfaces or clients.
	rule.Id = ruleId
	rule.InterfaceId = existing.InterfaceId
	rule.ClientId = existing.ClientId
	rule.CreatedAt = existing.CreatedAt

	if err := normalizeRule(&rule); err != nil {
		return nil, err
	}
	iface, err := resolveInterface(rule.InterfaceId)
	if err != nil {
		return nil, err
	}
	snap, err := buildSnapshot(iface)
	if err != nil {
		return nil, err
	}
	if offending := snap.validate([]model.MappingRule{rule}); len(offending) > 0 {
		return nil, invalidConfiguration(offending)
	}

	rule.UpdatedAt = time.Now().UTC().Unix()
	updated, err := store.UpdateMappingRule(rule)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ruleNotFound(ruleId)
	}
	return store.GetMappingRule(ruleId)
}

func (ms *MappingService) DeleteMappingRule(ruleId int64) error {

	existing, err := store.GetMappingRule(ruleId)
	if err != nil {
		return err
	}
	if existing == nil {
		return ruleNotFound(ruleId)
	}

	deleted, err := store.DeleteMappingRule(ruleId, existing.InterfaceId)
	if err != nil {
		return err
	}
	if !deleted {
		return ruleNotFound(ruleId)
	}
	return nil
}

// ReplaceMappingRules validates the incoming configuration as a whole and
// swaps it in atomically. A failing rule rejects the entire save and leaves
// the previous configuration in place. Validation runs against the schema
// and catalog as they exist at save time, not as the operator's surface last
// rendered them, so a save from a stale view is rejected rather than
// persisted.
func (ms *MappingService) ReplaceMappingRules(interfaceId int64, rules []model.MappingRule) (
	[]model.MappingRule, error) {

	iface, err := resolveInterface(interfaceId)
	if err != nil {
		return nil, err
	}

	currentTime := time.Now().UTC().Unix()
	seen := map[string]bool{}
	var offending []string
	for i := range rules {
		rules[i].InterfaceId = interfaceId
		rules[i].ClientId = iface.ClientId
		rules[i].CreatedAt = currentTime
		rules[i].UpdatedAt = currentTime
		if err := normalizeRule(&rules[i]); err != nil {
			return nil, err
		}
		if seen[rules[i].XmlPath] {
			offending = append(offending, fmt.Sprintf("path '%s' is bound more than once", rules[i].XmlPath))
		}
		seen[rules[i].XmlPath] = true
	}

	snap, err := buildSnapshot(iface)
	if err != nil {
		return nil, err
	}
	offending = append(offending, snap.validate(rules)...)
	if len(offending) > 0 {
		return nil, invalidConfiguration(offending)
	}

	return store.ReplaceMappingRules(interfaceId, rules)
}

// GetMappingSurface assembles the schema elements, the catalog and the bound
// rules of an interface in one response. Missing schema documents and an
// empty catalog degrade to empty lists so a half-provisioned interface can
// still be inspected.
func (ms *MappingService) GetMappingSurface(interfaceId int64) (*model.MappingSurface, error) {

	iface, err := resolveInterface(interfaceId)
	if err != nil {
		return nil, err
	}

	elements, err := schemaprovider.NewSchemaProvider().GetSchemaService().GetSchemaElements(interfaceId)
	if err != nil {
		if !isClientError(err) {
			return nil, err
		}
		elements = []schemamodel.SchemaElement{}
	}

	tables, err := catalogprovider.NewCatalogProvider().GetCatalogService().
		GetTargetTables(iface.ClientId, interfaceId)
	if err != nil {
		if !isClientError(err) {
			return nil, err
		}
		tables = []catalogmodel.TargetTable{}
	}

	rules, err := store.GetMappingRulesByInterface(interfaceId)
	if err != nil {
		return nil, err
	}

	return &model.MappingSurface{
		InterfaceId:    interfaceId,
		SchemaElements: elements,
		TargetTables:   tables,
		Rules:          rules,
	}, nil
}

// BindMapping creates the rule for the (interface, xml path) pair or updates
// it in place when the path is already bound. Re-binding a path is how the
// configuration UI edits a single mapping without replaying the whole set.
func (ms *MappingService) BindMapping(rule model.MappingRule) (*model.MappingRule, error) {

	iface, err := resolveInterface(rule.InterfaceId)
	if err != nil {
		return nil, err
	}
	rule.ClientId = iface.ClientId

	if err := normalizeRule(&rule); err != nil {
		return nil, err
	}

	existing, err := store.GetMappingRuleByPath(rule.InterfaceId, rule.XmlPath)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return ms.CreateMappingRule(rule)
	}
	return ms.UpdateMappingRule(existing.Id, rule)
}

// normalizeRule trims, derives the defaults the UI may omit and checks the
// required fields.
func normalizeRule(rule *model.MappingRule) error {

	rule.XmlPath = strings.TrimSpace(rule.XmlPath)
	rule.TableName = strings.TrimSpace(rule.TableName)
	rule.DatabaseField = strings.TrimSpace(rule.DatabaseField)

	var missing []string
	if rule.XmlPath == "" {
		missing = append(missing, "xml_path")
	}
	if rule.TableName == "" {
		missing = append(missing, "table_name")
	}
	if rule.DatabaseField == "" {
		missing = append(missing, "database_field")
	}
	if len(missing) > 0 {
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.VALIDATION_ERROR.Code,
			Message:     errors.VALIDATION_ERROR.Message,
			Description: "Missing required field(s): " + strings.Join(missing, ", ") + ".",
		}, http.StatusBadRequest)
	}

	rule.IsAttribute = IsAttributePath(rule.XmlPath)
	if rule.XsdElement == "" {
		rule.XsdElement = LeafName(rule.XmlPath)
	}
	if rule.Description == "" {
		rule.Description = fmt.Sprintf("Maps %s to %s.%s", rule.XmlPath, rule.TableName,
			rule.DatabaseField)
	}
	return nil
}

// IsAttributePath reports whether the path's leaf segment addresses an XML
// attribute.
func IsAttributePath(xmlPath string) bool {

	return strings.HasPrefix(LeafSegment(xmlPath), "@")
}

// LeafSegment returns the last slash-separated segment of the path.
func LeafSegment(xmlPath string) string {

	if idx := strings.LastIndex(xmlPath, "/"); idx >= 0 {
		return xmlPath[idx+1:]
	}
	return xmlPath
}

// LeafName returns the leaf segment without the attribute marker.
func LeafName(xmlPath string) string {

	return strings.TrimPrefix(LeafSegment(xmlPath), "@")
}

// snapshot is the point-in-time view of the schema and the catalog a
// configuration write is validated against.
type snapshot struct {
	// schemaPaths is nil when the interface has no resolvable schema; path
	// validation is skipped in that case rather than rejecting every rule.
	schemaPaths map[string]bool
	// columnTypes maps table name to column name to data type. Nil when the
	// catalog is unavailable.
	columnTypes map[string]map[string]string
}

func buildSnapshot(iface *interfacemodel.Interface) (*snapshot, error) {

	snap := &snapshot{}

	elements, err := schemaprovider.NewSchemaProvider().GetSchemaService().GetSchemaElements(iface.Id)
	if err != nil {
		if !isClientError(err) {
			return nil, err
		}
	} else {
		snap.schemaPaths = make(map[string]bool, len(elements))
		for _, el := range elements {
			snap.schemaPaths[el.Path] = true
		}
	}

	tables, err := catalogprovider.NewCatalogProvider().GetCatalogService().
		GetTargetTables(iface.ClientId, iface.Id)
	if err != nil {
		if !isClientError(err) {
			return nil, err
		}
	} else {
		snap.columnTypes = make(map[string]map[string]string, len(tables))
		for _, table := range tables {
			cols := make(map[string]string, len(table.Columns))
			for _, col := range table.Columns {
				cols[col.Name] = col.DataType
			}
			snap.columnTypes[table.Name] = cols
		}
	}
	return snap, nil
}

// validate checks every rule against the snapshot and returns one line per
// offending binding. It also backfills the rule's data type from the catalog
// when the caller left it empty.
func (s *snapshot) validate(rules []model.MappingRule) []string {

	var offending []string
	for i := range rules {
		rule := &rules[i]

		if s.schemaPaths != nil && !s.schemaPaths[rule.XmlPath] {
			offending = append(offending,
				fmt.Sprintf("path '%s' does not exist in the interface schema", rule.XmlPath))
		}

		if s.columnTypes == nil {
			continue
		}
		cols, tableKnown := s.columnTypes[rule.TableName]
		if !tableKnown {
			offending = append(offending,
				fmt.Sprintf("table '%s' does not exist in the target catalog", rule.TableName))
			continue
		}
		colType, colKnown := cols[rule.DatabaseField]
		if !colKnown {
			offending = append(offending,
				fmt.Sprintf("column '%s' does not exist on table '%s'", rule.DatabaseField,
					rule.TableName))
			continue
		}
		if rule.DataType == "" {
			rule.DataType = colType
		}
	}
	return offending
}

func resolveInterface(interfaceId int64) (*interfacemodel.Interface, error) {

	return interfaceprovider.NewInterfaceProvider().GetInterfaceService().GetInterface(interfaceId)
}

func invalidConfiguration(offending []string) error {

	return errors.NewClientError(errors.ErrorMessage{
		Code:        errors.INVALID_CONFIGURATION.Code,
		Message:     errors.INVALID_CONFIGURATION.Message,
		Description: strings.Join(offending, "; ") + ".",
	}, http.StatusUnprocessableEntity)
}

func ruleNotFound(ruleId int64) error {

	return errors.NewClientError(errors.ErrorMessage{
		Code:        errors.MAPPING_RULE_NOT_FOUND.Code,
		Message:     errors.MAPPING_RULE_NOT_FOUND.Message,
		Description: fmt.Sprintf("No mapping rule found for id: %d.", ruleId),
	}, http.StatusNotFound)
}

func isClientError(err error) bool {

	_, ok := err.(*errors.ClientError)
	return ok
}
