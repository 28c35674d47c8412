package ports

// GraphQLErrorStore keeps the server operation ids of failed GraphQL operations
// so that they can be correlated with server logs.
//
//go:generate mockgen -source=errorstore.go -destination=mocks/mock_errorstore.go -package=mocks
type GraphQLErrorStore interface {
	// Add records operation ids; duplicates are ignored.
	Add(operationIDs ...string)
	// OperationIDs returns the recorded ids in insertion order.
	OperationIDs() []string
}
