package reports

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/liftstats/internal/telemetry/tracing"

	"cloud.google.com/go/firestore"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/iterator"
)

const (
	usersCollection   = "users"
	reportsCollection = "strength_reports"
)

// FirestoreStore keeps reports under users/{uid}/strength_reports/{id}.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{
		client: client,
	}
}

func (s *FirestoreStore) reports(userID string) *firestore.CollectionRef {
	return s.client.Collection(usersCollection).Doc(userID).Collection(reportsCollection)
}

func (s *FirestoreStore) Save(ctx context.Context, report Report) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.reports.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user", report.UserID))

	doc, err := toDoc(report)
	if err != nil {
		return err
	}
	if _, err := s.reports(report.UserID).Doc(report.ID).Set(ctx, doc); err != nil {
		return fmt.Errorf("save report %s: %w", report.ID, err)
	}
	return nil
}

func (s *FirestoreStore) Latest(ctx context.Context, userID string) (_ Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.reports.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user", userID))

	iter := s.reports(userID).OrderBy("generatedAt", firestore.Desc).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return Report{}, ErrReportNotFound
	}
	if err != nil {
		return Report{}, fmt.Errorf("query latest report: %w", err)
	}

	var doc reportDoc
	if err := snap.DataTo(&doc); err != nil {
		return Report{}, fmt.Errorf("decode report %s: %w", snap.Ref.ID, err)
	}
	return fromDoc(doc)
}
