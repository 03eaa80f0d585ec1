//go:build generate

package grizzly

//go:generate sh -c "go run go.uber.org/mock/mockgen -package mocks -destination internal/mocks/processor.go github.com/grizzly-go/grizzly Processor"
//go:generate sh -c "go run go.uber.org/mock/mockgen -package mocks -destination internal/mocks/processor_selector.go github.com/grizzly-go/grizzly ProcessorSelector"
//go:generate sh -c "go run go.uber.org/mock/mockgen -package mocks -destination internal/mocks/connection.go github.com/grizzly-go/grizzly Connection"
