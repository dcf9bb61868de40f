// Package pb holds the generated protobuf and gRPC bindings for moisture.v1.
package pb

//go:generate protoc -I ../../proto --go_out=. --go_opt=module=github.com/quentinrf/plant-monitor/services/moisture-service/pkg/pb --go-grpc_out=. --go-grpc_opt=module=github.com/quentinrf/plant-monitor/services/moisture-service/pkg/pb moisture/v1/moisture.proto
