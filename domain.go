package dhesend

import (
	"context"
	"strings"
	"time"

	"github.com/dhesend-org/dhesend-go/internal/api"
	"github.com/dhesend-org/dhesend-go/internal/apierrors"
)

// DomainStatus is the verification state of a domain.
type DomainStatus string

const (
	DomainStatusFailed           DomainStatus = "Failed"
	DomainStatusNotStarted       DomainStatus = "NotStarted"
	DomainStatusPending          DomainStatus = "Pending"
	DomainStatusSuccess          DomainStatus = "Success"
	DomainStatusTemporaryFailure DomainStatus = "TemporaryFailure"
)

// DNSRecord is a record to add to the domain's DNS zone.
type DNSRecord struct {
	Name string `json:"name"`
	// Type is the record type, e.g. CNAME. Empty for the TXT record.
	Type  string `json:"type,omitempty"`
	Value string `json:"value"`
}

// CreateDomainResponse is returned by DomainService.Create.
type CreateDomainResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Message tells the user what to do next, e.g. which records to add.
	Message string      `json:"message"`
	TXT     DNSRecord   `json:"txt"`
	DKIM    []DNSRecord `json:"dkim"`
}

// DomainSummary is one entry of a domain listing.
type DomainSummary struct {
	DomainName string       `json:"domainName"`
	Status     DomainStatus `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// Domain is a sending domain with its verification records.
type Domain struct {
	DomainName string       `json:"domainName"`
	Status     DomainStatus `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
	TXT        DNSRecord    `json:"txt"`
	DKIM       []DNSRecord  `json:"dkim"`
}

// DeleteResponse is returned by delete operations.
type DeleteResponse struct {
	Success string `json:"success"`
}

// DomainService manages sending domains.
type DomainService struct {
	api *api.Client
}

// Create registers a sending domain. name must contain a dot.
func (s *DomainService) Create(ctx context.Context, name string) (*CreateDomainResponse, error) {
	if !strings.Contains(name, ".") {
		return api.Fail[CreateDomainResponse](apierrors.Validation(apierrors.ErrInvalidDomain,
			"Provide a valid domain, e.g., `dhesend.com`.")).Unwrap()
	}
	return api.PostJSON[CreateDomainResponse](ctx, s.api, api.PathCreateDomain,
		&api.DomainRequest{Domain: name}).Unwrap()
}

// Get returns a domain with its DNS records.
func (s *DomainService) Get(ctx context.Context, name string) (*Domain, error) {
	return api.Get[Domain](ctx, s.api, api.DomainPath(name)).Unwrap()
}

// List returns all domains.
func (s *DomainService) List(ctx context.Context) ([]DomainSummary, error) {
	domains, err := api.Get[[]DomainSummary](ctx, s.api, api.PathListDomains).Unwrap()
	if err != nil {
		return nil, err
	}
	return *domains, nil
}

// Delete removes a domain.
func (s *DomainService) Delete(ctx context.Context, name string) (*DeleteResponse, error) {
	return api.PostJSON[DeleteResponse](ctx, s.api, api.PathDeleteDomain,
		&api.DomainRequest{Domain: name}).Unwrap()
}
