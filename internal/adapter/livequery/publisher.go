// Package livequery turns record-store writes into NATS change events and
// change events back into full collection snapshots.
package livequery

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"gestorpro/internal/domain/dates"
	"gestorpro/internal/usecase/interfaces"
)

const subjectPrefix = "gestor.orgs"

// CollectionSubject maps a collection path onto its change subject:
// "rentals/r1/generatedContracts" becomes gestor.orgs.{org}.rentals.r1.generatedContracts.
func CollectionSubject(orgID, collection string) string {
	return fmt.Sprintf("%s.%s.%s", subjectPrefix, orgID, strings.ReplaceAll(collection, "/", "."))
}

func OrganizationSubject(orgID string) string {
	return fmt.Sprintf("%s.%s.settings", subjectPrefix, orgID)
}

type ChangeEvent struct {
	OrgID      string `json:"orgId"`
	Collection string `json:"collection,omitempty"`
	At         string `json:"at"`
}

// Publisher announces changes on NATS. Events carry no document data; subscribers
// re-read the collection.
type Publisher struct {
	nc  *nats.Conn
	now func() time.Time
}

var _ interfaces.IChangePublisher = (*Publisher)(nil)

func NewPublisher(nc *nats.Conn) *Publisher {
	return &Publisher{nc: nc, now: time.Now}
}

func (p *Publisher) PublishCollection(_ context.Context, orgID, collection string) error {
	return p.publish(CollectionSubject(orgID, collection), ChangeEvent{OrgID: orgID, Collection: collection, At: dates.Stamp(p.now())})
}

func (p *Publisher) PublishOrganization(_ context.Context, orgID string) error {
	return p.publish(OrganizationSubject(orgID), ChangeEvent{OrgID: orgID, At: dates.Stamp(p.now())})
}

func (p *Publisher) publish(subject string, ev ChangeEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}
	if err := p.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}
