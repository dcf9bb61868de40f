package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/domain"
	"github.com/quentinrf/plant-monitor/services/moisture-service/pkg/pb"
)

// MoistureServiceHandler implements the gRPC MoistureService
type MoistureServiceHandler struct {
	pb.UnimplementedMoistureServiceServer
	repo       domain.ReadingRepository
	threshold  domain.Threshold
	resolution int
}

// NewMoistureServiceHandler creates a new gRPC handler.
// The handler only reads and writes the store; sampling stays with the reporter.
func NewMoistureServiceHandler(repo domain.ReadingRepository, threshold domain.Threshold, resolution int) *MoistureServiceHandler {
	return &MoistureServiceHandler{
		repo:       repo,
		threshold:  threshold,
		resolution: resolution,
	}
}

// GetCurrentMoisture returns the most recent stored reading
func (h *MoistureServiceHandler) GetCurrentMoisture(ctx context.Context, req *pb.GetCurrentMoistureRequest) (*pb.GetCurrentMoistureResponse, error) {
	log.Info().Msg("GetCurrentMoisture called")

	reading, err := h.repo.GetLatestReading(ctx)
	if errors.Is(err, domain.ErrReadingNotFound) {
		return nil, status.Error(codes.NotFound, "no readings recorded yet")
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to get latest reading")
		return nil, status.Error(codes.Internal, "failed to get reading")
	}

	return &pb.GetCurrentMoistureResponse{Reading: h.toProto(reading)}, nil
}

// GetHistory returns readings within time range with statistics
func (h *MoistureServiceHandler) GetHistory(ctx context.Context, req *pb.GetHistoryRequest) (*pb.GetHistoryResponse, error) {
	log.Info().
		Int64("start", req.GetStartTime()).
		Int64("end", req.GetEndTime()).
		Msg("GetHistory called")

	if req.GetEndTime() < req.GetStartTime() {
		return nil, status.Error(codes.InvalidArgument, "end_time before start_time")
	}

	readings, err := h.repo.GetReadingsInRange(ctx, time.Unix(req.GetStartTime(), 0), time.Unix(req.GetEndTime(), 0))
	if err != nil {
		log.Error().Err(err).Msg("failed to get readings")
		return nil, status.Error(codes.Internal, "failed to get readings")
	}

	resp := &pb.GetHistoryResponse{Readings: make([]*pb.Reading, len(readings))}
	for i, r := range readings {
		resp.Readings[i] = h.toProto(r)
	}

	stats := calculateStatistics(readings)
	resp.AverageValue = stats.average
	resp.MinValue = int64(stats.min)
	resp.MaxValue = int64(stats.max)

	return resp, nil
}

// RecordReading manually records a reading
func (h *MoistureServiceHandler) RecordReading(ctx context.Context, req *pb.RecordReadingRequest) (*pb.RecordReadingResponse, error) {
	value := req.GetValue()
	log.Info().Int64("value", value).Msg("RecordReading called")

	if value < 0 || value > int64(domain.MaxRaw(h.resolution)) {
		return nil, status.Errorf(codes.InvalidArgument, "value %d outside 0-%d", value, domain.MaxRaw(h.resolution))
	}

	reading := domain.NewMoistureReading(int(value))
	if err := h.repo.SaveReading(ctx, reading); err != nil {
		log.Error().Err(err).Msg("failed to save reading")
		return nil, status.Error(codes.Internal, "failed to save reading")
	}

	return &pb.RecordReadingResponse{Reading: h.toProto(reading)}, nil
}

func (h *MoistureServiceHandler) toProto(r *domain.MoistureReading) *pb.Reading {
	level := r.Level(h.threshold)
	return &pb.Reading{
		Id:        r.ID,
		Value:     int64(r.Value),
		Timestamp: r.Timestamp.Unix(),
		Category:  level.String(),
		Message:   level.Message(),
	}
}

type statistics struct {
	average float64
	min     int
	max     int
}

func calculateStatistics(readings []*domain.MoistureReading) statistics {
	if len(readings) == 0 {
		return statistics{}
	}

	sum := 0
	lo := readings[0].Value
	hi := readings[0].Value
	for _, r := range readings {
		sum += r.Value
		lo = min(lo, r.Value)
		hi = max(hi, r.Value)
	}

	return statistics{
		average: float64(sum) / float64(len(readings)),
		min:     lo,
		max:     hi,
	}
}
