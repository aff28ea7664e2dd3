//go:build protogen

package triage

import (
	"context"
	"time"

	"github.com/petcare-labs/pawsched/libs/grpcx"
	triagev1 "github.com/petcare-labs/pawsched/protos/gen/triage/v1"
)

type grpcProvider struct {
	client triagev1.TriageServiceClient
}

func NewProvider(addr string) (Provider, error) {
	if addr == "" {
		return nil, nil
	}
	conn, err := grpcx.Dial(context.Background(), addr, grpcx.DialOptions{Timeout: 3 * time.Second})
	if err != nil {
		return nil, err
	}
	return &grpcProvider{client: triagev1.NewTriageServiceClient(conn)}, nil
}

func (p *grpcProvider) GetAssessment(ctx context.Context, assessmentID string) (Assessment, error) {
	resp, err := p.client.GetAssessment(ctx, &triagev1.GetAssessmentRequest{AssessmentId: assessmentID})
	if err != nil {
		return Assessment{}, err
	}
	return Assessment{
		ID:    resp.GetAssessmentId(),
		Level: resp.GetLevel(),
	}, nil
}
