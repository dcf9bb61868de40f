package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/reflection"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/adapters/memory"
	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/domain"
	"github.com/quentinrf/plant-monitor/services/moisture-service/pkg/pb"
)

// startTestServer creates an in-process gRPC server with reflection enabled and
// returns a connection to it. The server is stopped when the test ends.
func startTestServer(t *testing.T) *grpc.ClientConn {
	t.Helper()

	repo := memory.NewReadingRepository()
	handler := NewMoistureServiceHandler(repo, domain.DefaultThreshold, domain.DefaultResolution)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	srv := grpc.NewServer()
	pb.RegisterMoistureServiceServer(srv, handler)
	reflection.Register(srv)

	go srv.Serve(lis)
	t.Cleanup(func() {
		srv.GracefulStop()
	})

	conn, err := grpc.NewClient(
		lis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func newTestClient(t *testing.T) pb.MoistureServiceClient {
	t.Helper()
	return pb.NewMoistureServiceClient(startTestServer(t))
}

func TestGetCurrentMoisture_NoReadings(t *testing.T) {
	client := newTestClient(t)

	_, err := client.GetCurrentMoisture(context.Background(), &pb.GetCurrentMoistureRequest{})
	if status.Code(err) != codes.NotFound {
		t.Errorf("expected NotFound on an empty store, got %v", err)
	}
}

func TestReflection_ResolvesMoistureService(t *testing.T) {
	conn := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := reflectionpb.NewServerReflectionClient(conn).ServerReflectionInfo(ctx)
	if err != nil {
		t.Fatalf("ServerReflectionInfo failed: %v", err)
	}
	defer stream.CloseSend()

	err = stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{
			FileContainingSymbol: "moisture.v1.MoistureService",
		},
	})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}

	resp, err := stream.Recv()
	if err != nil {
		t.Fatalf("recv failed: %v", err)
	}
	if errResp := resp.GetErrorResponse(); errResp != nil {
		t.Fatalf("reflection error: %s", errResp.GetErrorMessage())
	}

	files := resp.GetFileDescriptorResponse().GetFileDescriptorProto()
	if len(files) == 0 {
		t.Fatal("expected a file descriptor for moisture.v1.MoistureService")
	}

	var fd descriptorpb.FileDescriptorProto
	if err := proto.Unmarshal(files[0], &fd); err != nil {
		t.Fatalf("failed to decode descriptor: %v", err)
	}
	if fd.GetName() != "moisture/v1/moisture.proto" {
		t.Errorf("unexpected file %q", fd.GetName())
	}
	if len(fd.GetService()) != 1 || len(fd.GetService()[0].GetMethod()) != 3 {
		t.Fatalf("expected one service with 3 methods, got %v", fd.GetService())
	}

	methods := map[string]bool{}
	for _, m := range fd.GetService()[0].GetMethod() {
		methods[m.GetName()] = true
	}
	for _, name := range []string{"GetCurrentMoisture", "GetHistory", "RecordReading"} {
		if !methods[name] {
			t.Errorf("method %s missing from descriptor", name)
		}
	}
}

func TestRecordReading_ThenGetCurrent(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	recorded, err := client.RecordReading(ctx, &pb.RecordReadingRequest{Value: 200})
	if err != nil {
		t.Fatalf("RecordReading failed: %v", err)
	}
	if recorded.GetReading().GetValue() != 200 {
		t.Errorf("expected recorded value 200, got %v", recorded.GetReading().GetValue())
	}
	if recorded.GetReading().GetId() == 0 {
		t.Error("expected recorded reading to have an ID")
	}

	resp, err := client.GetCurrentMoisture(ctx, &pb.GetCurrentMoistureRequest{})
	if err != nil {
		t.Fatalf("GetCurrentMoisture failed: %v", err)
	}
	current := resp.GetReading()
	if current.GetValue() != 200 {
		t.Errorf("expected current value 200, got %v", current.GetValue())
	}
	if current.GetCategory() != "high" {
		t.Errorf("expected category 'high', got %q", current.GetCategory())
	}
	if current.GetMessage() != domain.HighMoistureMessage {
		t.Errorf("expected message %q, got %q", domain.HighMoistureMessage, current.GetMessage())
	}
}

func TestGetHistory_TimeRange(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	now := time.Now()

	for _, v := range []int64{300, 600} {
		if _, err := client.RecordReading(ctx, &pb.RecordReadingRequest{Value: v}); err != nil {
			t.Fatalf("RecordReading failed: %v", err)
		}
	}

	resp, err := client.GetHistory(ctx, &pb.GetHistoryRequest{
		StartTime: now.Add(-time.Minute).Unix(),
		EndTime:   now.Add(time.Minute).Unix(),
	})
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(resp.Readings) != 2 {
		t.Fatalf("expected 2 readings, got %d", len(resp.Readings))
	}
	if resp.Readings[0].Value != 300 || resp.Readings[1].Value != 600 {
		t.Errorf("unexpected readings order: %v, %v", resp.Readings[0].Value, resp.Readings[1].Value)
	}

	if resp.AverageValue != 450 {
		t.Errorf("expected average 450, got %v", resp.AverageValue)
	}
	if resp.MinValue != 300 {
		t.Errorf("expected min 300, got %v", resp.MinValue)
	}
	if resp.MaxValue != 600 {
		t.Errorf("expected max 600, got %v", resp.MaxValue)
	}
}

func TestGetHistory_EmptyRange(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	resp, err := client.GetHistory(ctx, &pb.GetHistoryRequest{
		StartTime: time.Now().Add(-48 * time.Hour).Unix(),
		EndTime:   time.Now().Add(-47 * time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(resp.Readings) != 0 {
		t.Errorf("expected 0 readings, got %d", len(resp.Readings))
	}
	if resp.AverageValue != 0 {
		t.Errorf("expected zero average, got %v", resp.AverageValue)
	}
}

func TestGetHistory_InvertedRange(t *testing.T) {
	client := newTestClient(t)

	now := time.Now()
	_, err := client.GetHistory(context.Background(), &pb.GetHistoryRequest{
		StartTime: now.Unix(),
		EndTime:   now.Add(-time.Hour).Unix(),
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", err)
	}
}

func TestRecordReading_CategoryMapping(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	cases := []struct {
		value    int64
		category string
	}{
		{0, "high"},
		{450, "high"},
		{451, "low"},
		{1023, "low"},
	}

	for _, tc := range cases {
		resp, err := client.RecordReading(ctx, &pb.RecordReadingRequest{Value: tc.value})
		if err != nil {
			t.Fatalf("RecordReading(%d) failed: %v", tc.value, err)
		}
		if got := resp.GetReading().GetCategory(); got != tc.category {
			t.Errorf("value %d: expected category %q, got %q", tc.value, tc.category, got)
		}
	}
}

func TestRecordReading_OutOfRange(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	for _, v := range []int64{-1, 1024} {
		_, err := client.RecordReading(ctx, &pb.RecordReadingRequest{Value: v})
		if status.Code(err) != codes.InvalidArgument {
			t.Errorf("value %d: expected InvalidArgument, got %v", v, err)
		}
	}
}
