// Package graphql classifies GraphQL documents using gqlparser.
package graphql

import (
	"sync"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	contextDirective = "context"
	scopeArgument    = "scope"
	providerArgument = "provider"
)

// Classifier implements ports.QueryClassifier.
// Parsed documents are memoized by text since the same documents are sent over and over.
type Classifier struct {
	mu     sync.RWMutex
	parsed map[string]*ast.QueryDocument
}

// NewClassifier creates a new Classifier.
func NewClassifier() *Classifier {
	return &Classifier{parsed: make(map[string]*ast.QueryDocument)}
}

// Classify walks the document once and collects its operation type and @context arguments.
//
// The operation type defaults to mutation when the document has no operation. When several
// operations or @context(scope:) directives are present the last one in document order wins,
// with fragments visited after operations.
func (c *Classifier) Classify(doc *domain.Document, operationName string) (domain.QueryAssets, error) {
	query, err := c.parse(doc)
	if err != nil {
		return domain.QueryAssets{}, err
	}

	v := &visitor{assets: domain.QueryAssets{OperationType: domain.OperationMutation}}

	operations := query.Operations
	if operationName != "" {
		if op := operations.ForName(operationName); op != nil {
			operations = ast.OperationList{op}
		}
	}
	for _, op := range operations {
		v.operation(op)
	}
	for _, fragment := range query.Fragments {
		v.directives(fragment.Directives)
		v.selections(fragment.SelectionSet)
	}

	return v.assets, nil
}

func (c *Classifier) parse(doc *domain.Document) (*ast.QueryDocument, error) {
	c.mu.RLock()
	query, ok := c.parsed[doc.Text]
	c.mu.RUnlock()
	if ok {
		return query, nil
	}

	query, err := parser.ParseQuery(&ast.Source{Name: doc.Name, Input: doc.Text})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidQuery, err.Error()), "document", doc.Name)
	}

	c.mu.Lock()
	c.parsed[doc.Text] = query
	c.mu.Unlock()
	return query, nil
}

type visitor struct {
	assets domain.QueryAssets
}

func (v *visitor) operation(op *ast.OperationDefinition) {
	v.assets.OperationType = string(op.Operation)
	v.directives(op.Directives)
	v.selections(op.SelectionSet)
}

func (v *visitor) selections(set ast.SelectionSet) {
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			v.directives(s.Directives)
			v.selections(s.SelectionSet)
		case *ast.InlineFragment:
			v.directives(s.Directives)
			v.selections(s.SelectionSet)
		case *ast.FragmentSpread:
			v.directives(s.Directives)
		}
	}
}

func (v *visitor) directives(list ast.DirectiveList) {
	for _, d := range list {
		if d.Name != contextDirective {
			continue
		}
		if arg := d.Arguments.ForName(scopeArgument); arg != nil && arg.Value != nil {
			v.assets.Scope = arg.Value.Raw
		}
		if arg := d.Arguments.ForName(providerArgument); arg != nil && arg.Value != nil {
			v.assets.Providers = append(v.assets.Providers, arg.Value.Raw)
		}
	}
}
