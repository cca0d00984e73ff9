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
	"encoding/xml"
	"strings"

	"github.com/pkg/errors"
	"github.com/wso2/xml-ingestion-service/internal/schema/model"
)

// The introspector understands the subset of XSD the ingestion contracts
// actually use: global elements, named and anonymous complex types with
// sequence/choice/all content, and attributes. Substitution groups, groups
// and redefines are out of contract.

type xsdSchema struct {
	XMLName      xml.Name         `xml:"schema"`
	Elements     []xsdElement     `xml:"element"`
	ComplexTypes []xsdComplexType `xml:"complexType"`
}

type xsdElement struct {
	Name        string          `xml:"name,attr"`
	Type        string          `xml:"type,attr"`
	MinOccurs   string          `xml:"minOccurs,attr"`
	MaxOccurs   string          `xml:"maxOccurs,attr"`
	ComplexType *xsdComplexType `xml:"complexType"`
}

type xsdComplexType struct {
	Name       string         `xml:"name,attr"`
	Sequence   *xsdParticle   `xml:"sequence"`
	Choice     *xsdParticle   `xml:"choice"`
	All        *xsdParticle   `xml:"all"`
	Attributes []xsdAttribute `xml:"attribute"`
	SimpleBody *xsdSimpleBody `xml:"simpleContent"`
}

type xsdParticle struct {
	Elements  []xsdElement  `xml:"element"`
	Choices   []xsdParticle `xml:"choice"`
	Sequences []xsdParticle `xml:"sequence"`
}

type xsdSimpleBody struct {
	Extension *xsdExtension `xml:"extension"`
}

type xsdExtension struct {
	Base       string         `xml:"base,attr"`
	Attributes []xsdAttribute `xml:"attribute"`
}

type xsdAttribute struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
	Use  string `xml:"use,attr"`
}

// ParseSchema flattens an XSD document into the list of mappable elements in
// document order. Returns an error when the payload is not a well-formed
// schema document.
func ParseSchema(data []byte) ([]model.SchemaElement, error) {

	var doc xsdSchema
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "unmarshalling schema document")
	}
	if doc.XMLName.Local != "schema" {
		return nil, errors.Errorf("unexpected root element: %s", doc.XMLName.Local)
	}
	if len(doc.Elements) == 0 {
		return nil, errors.New("schema declares no global elements")
	}

	typesByName := make(map[string]*xsdComplexType, len(doc.ComplexTypes))
	for i := range doc.ComplexTypes {
		ct := &doc.ComplexTypes[i]
		if ct.Name != "" {
			typesByName[ct.Name] = ct
		}
	}

	var elements []model.SchemaElement
	for i := range doc.Elements {
		walkElement(&doc.Elements[i], "", typesByName, map[string]bool{}, &elements)
	}
	return elements, nil
}

func walkElement(el *xsdElement, parentPath string, typesByName map[string]*xsdComplexType,
	visiting map[string]bool, out *[]model.SchemaElement) {

	if el.Name == "" {
		return
	}

	path := el.Name
	if parentPath != "" {
		path = parentPath + "/" + el.Name
	}

	*out = append(*out, model.SchemaElement{
		Path:     path,
		Name:     el.Name,
		Type:     localName(el.Type),
		Required: el.MinOccurs != "0",
		Repeats:  el.MaxOccurs == "unbounded" || (el.MaxOccurs != "" && el.MaxOccurs != "1"),
	})

	ct := el.ComplexType
	typeName := localName(el.Type)
	if ct == nil && typeName != "" {
		ct = typesByName[typeName]
	}
	if ct == nil {
		return
	}

	// Recursive type definitions are legal in XSD; expand each named type
	// at most once per branch.
	if ct.Name != "" {
		if visiting[ct.Name] {
			return
		}
		visiting[ct.Name] = true
		defer delete(visiting, ct.Name)
	}

	for _, attr := range collectAttributes(ct) {
		if attr.Name == "" {
			continue
		}
		*out = append(*out, model.SchemaElement{
			Path:        path + "/@" + attr.Name,
			Name:        attr.Name,
			Type:        localName(attr.Type),
			IsAttribute: true,
			Required:    attr.Use == "required",
		})
	}

	for _, particle := range []*xsdParticle{ct.Sequence, ct.Choice, ct.All} {
		walkParticle(particle, path, typesByName, visiting, out)
	}
}

func walkParticle(p *xsdParticle, parentPath string, typesByName map[string]*xsdComplexType,
	visiting map[string]bool, out *[]model.SchemaElement) {

	if p == nil {
		return
	}
	for i := range p.Elements {
		walkElement(&p.Elements[i], parentPath, typesByName, visiting, out)
	}
	for i := range p.Choices {
		walkParticle(&p.Choices[i], parentPath, typesByName, visiting, out)
	}
	for i := range p.Sequences {
		walkParticle(&p.Sequences[i], parentPath, typesByName, visiting, out)
	}
}

func collectAttributes(ct *xsdComplexType) []xsdAttribute {

	attrs := ct.Attributes
	if ct.SimpleBody != nil && ct.SimpleBody.Extension != nil {
		attrs = append(attrs, ct.SimpleBody.Extension.Attributes...)
	}
	return attrs
}

// localName strips the namespace prefix from a QName, e.g. "xs:string"
// becomes "string".
func localName(qname string) string {

	if idx := strings.LastIndex(qname, ":"); idx >= 0 {
		return qname[idx+1:]
	}
	return qname
}
