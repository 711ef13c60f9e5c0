//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	audit "botanica/pkg/platform/audit"
	"botanica/pkg/platform/audit/store/kafka"
	"botanica/pkg/testutil/containers"
)

type KafkaStoreSuite struct {
	suite.Suite
	redpanda *containers.RedpandaContainer
}

func TestKafkaStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaStoreSuite))
}

func (s *KafkaStoreSuite) SetupSuite() {
	s.redpanda = containers.GetManager().GetRedpanda(s.T())
}

func (s *KafkaStoreSuite) TestAppendIsConsumable() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := kafka.New(s.redpanda.Brokers, "botanica.audit.test")
	s.Require().NoError(err)
	defer store.Close()
	s.Require().NoError(store.EnsureTopic(ctx, 1, 1))
	s.Require().NoError(store.EnsureTopic(ctx, 1, 1), "second call tolerates existing topic")

	event := audit.Event{
		Category: audit.CategoryEnrichment,
		Action:   string(audit.ActionConservationLookup),
		Subject:  "Welwitschia mirabilis",
		Outcome:  "found",
	}
	s.Require().NoError(store.Append(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.redpanda.Brokers...),
		kgo.ConsumeTopics("botanica.audit.test"),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	s.Require().Empty(fetches.Errors())

	var got []audit.Event
	fetches.EachRecord(func(r *kgo.Record) {
		var e audit.Event
		s.Require().NoError(json.Unmarshal(r.Value, &e))
		got = append(got, e)
	})
	s.Require().Len(got, 1)
	s.Equal("Welwitschia mirabilis", got[0].Subject)
	s.Equal("found", got[0].Outcome)
}
