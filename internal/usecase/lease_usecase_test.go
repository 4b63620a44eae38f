package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ikhaya/internal/domain/entities"
	"ikhaya/internal/usecase/interfaces"
	mock_interfaces "ikhaya/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type leaseMocks struct {
	leases     *mock_interfaces.MockILeaseRepository
	properties *mock_interfaces.MockIPropertyRepository
	sink       *mock_interfaces.MockINotificationSink
}

func newLeaseUseCase(t *testing.T) (*LeaseUseCase, leaseMocks) {
	ctrl := gomock.NewController(t)
	m := leaseMocks{
		leases:     mock_interfaces.NewMockILeaseRepository(ctrl),
		properties: mock_interfaces.NewMockIPropertyRepository(ctrl),
		sink:       mock_interfaces.NewMockINotificationSink(ctrl),
	}
	uc := NewLeaseUseCase(m.leases, m.properties, m.sink, DefaultBillingPolicy())
	uc.now = fixedClock(testNow)
	return uc, m
}

func validLeaseInput() CreateLeaseInput {
	return CreateLeaseInput{
		LandlordID: "landlord-1",
		TenantID:   "tenant-1",
		PropertyID: "property-1",
		RentAmount: decimal.NewFromInt(5000),
		Deposit:    decimal.NewFromInt(5000),
		StartDate:  date(2025, 1, 1),
		EndDate:    date(2025, 12, 31),
		Terms:      "standard",
	}
}

func draftLease() entities.Lease {
	in := validLeaseInput()
	return entities.Lease{
		ID:         "lease-1",
		PropertyID: in.PropertyID,
		LandlordID: in.LandlordID,
		TenantID:   in.TenantID,
		RentAmount: in.RentAmount,
		Deposit:    in.Deposit,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Terms:      in.Terms,
		Status:     entities.LeaseStatusDraft,
	}
}

func TestLeaseUseCase_CreateLease(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(in *CreateLeaseInput)
			want   error
		}{
			{"missing property", func(in *CreateLeaseInput) { in.PropertyID = " " }, ErrLeasePropertyRequired},
			{"missing landlord", func(in *CreateLeaseInput) { in.LandlordID = "" }, ErrLeaseLandlordRequired},
			{"missing tenant", func(in *CreateLeaseInput) { in.TenantID = "" }, ErrLeaseTenantRequired},
			{"zero rent", func(in *CreateLeaseInput) { in.RentAmount = decimal.Zero }, ErrLeaseInvalidRent},
			{"negative rent", func(in *CreateLeaseInput) { in.RentAmount = decimal.NewFromInt(-1) }, ErrLeaseInvalidRent},
			{"negative deposit", func(in *CreateLeaseInput) { in.Deposit = decimal.NewFromInt(-1) }, ErrLeaseNegativeDeposit},
			{"deposit above ceiling", func(in *CreateLeaseInput) { in.Deposit = decimal.RequireFromString("5000.01") }, ErrLeaseDepositTooHigh},
			{"missing start", func(in *CreateLeaseInput) { in.StartDate = time.Time{} }, ErrLeaseDatesRequired},
			{"end before start", func(in *CreateLeaseInput) { in.EndDate = date(2024, 12, 31) }, ErrLeaseInvalidDates},
			{"end equals start", func(in *CreateLeaseInput) { in.EndDate = in.StartDate }, ErrLeaseInvalidDates},
			{"empty terms", func(in *CreateLeaseInput) { in.Terms = "  " }, ErrLeaseTermsRequired},
			{"first failure wins", func(in *CreateLeaseInput) { in.TenantID = ""; in.Terms = "" }, ErrLeaseTenantRequired},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				// No repository expectations: a rejected lease is never written.
				uc, _ := newLeaseUseCase(t)
				in := validLeaseInput()
				tc.mutate(&in)
				_, err := uc.CreateLease(context.Background(), in)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("deposit ceiling disabled", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		uc.policy.MaxDeposit = decimal.Zero
		m.leases.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lease) (entities.Lease, error) { return l, nil },
		)
		in := validLeaseInput()
		in.Deposit = decimal.NewFromInt(9000)
		if _, err := uc.CreateLease(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		m.leases.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Lease{}, errors.New("db"))
		_, err := uc.CreateLease(context.Background(), validLeaseInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		m.leases.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Lease{})).DoAndReturn(
			func(_ context.Context, l entities.Lease) (entities.Lease, error) {
				if l.ID == "" || l.Status != entities.LeaseStatusDraft {
					t.Fatalf("unexpected lease: %+v", l)
				}
				if l.LandlordSignature != "" || l.TenantSignature != "" {
					t.Fatalf("expected no signatures: %+v", l)
				}
				if !l.CreatedAt.Equal(testNow) || !l.UpdatedAt.Equal(testNow) {
					t.Fatalf("expected timestamps at %v, got %+v", testNow, l)
				}
				return l, nil
			},
		)

		res, err := uc.CreateLease(context.Background(), validLeaseInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.LeaseStatusDraft || !res.RentAmount.Equal(decimal.NewFromInt(5000)) {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestLeaseUseCase_SignLease(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newLeaseUseCase(t)
		_, err := uc.SignLease(context.Background(), " ", "landlord-1", "J. Smith")
		if !errors.Is(err, ErrInvalidLeaseID) {
			t.Fatalf("expected ErrInvalidLeaseID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(entities.Lease{}, nil)
		_, err := uc.SignLease(context.Background(), "lease-1", "landlord-1", "J. Smith")
		if !errors.Is(err, ErrLeaseNotFound) {
			t.Fatalf("expected ErrLeaseNotFound, got %v", err)
		}
	})

	t.Run("empty signature", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(draftLease(), nil)
		_, err := uc.SignLease(context.Background(), "lease-1", "landlord-1", "   ")
		if !errors.Is(err, ErrSignatureRequired) {
			t.Fatalf("expected ErrSignatureRequired, got %v", err)
		}
	})

	t.Run("stranger cannot sign", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(draftLease(), nil)
		_, err := uc.SignLease(context.Background(), "lease-1", "someone-else", "X")
		if !errors.Is(err, ErrNotLeaseParty) {
			t.Fatalf("expected ErrNotLeaseParty, got %v", err)
		}
	})

	t.Run("landlord signs first", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(draftLease(), nil)
		m.leases.EXPECT().RecordSignature(gomock.Any(), "lease-1", entities.LeasePartyLandlord, "J. Smith", testNow).DoAndReturn(
			func(_ context.Context, _ string, _ entities.LeaseParty, sig string, at time.Time) (entities.Lease, error) {
				l := draftLease()
				l.LandlordSignature = sig
				l.LandlordSignedAt = &at
				l.Status = entities.LeaseStatusPendingSignatures
				return l, nil
			},
		)

		res, err := uc.SignLease(context.Background(), "lease-1", "landlord-1", " J. Smith ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.LeaseStatusPendingSignatures || res.LandlordSignature != "J. Smith" || res.TenantSignature != "" {
			t.Fatalf("unexpected lease: %+v", res)
		}
	})

	t.Run("second signature by the same party is rejected", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		l := draftLease()
		l.LandlordSignature = "J. Smith"
		l.Status = entities.LeaseStatusPendingSignatures
		m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(l, nil)

		_, err := uc.SignLease(context.Background(), "lease-1", "landlord-1", "Someone Else")
		if !errors.Is(err, ErrLandlordAlreadySigned) {
			t.Fatalf("expected ErrLandlordAlreadySigned, got %v", err)
		}
		if err.Error() != "Landlord has already signed this lease" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	})

	t.Run("concurrent double submit loses the conditional write", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(draftLease(), nil)
		m.leases.EXPECT().RecordSignature(gomock.Any(), "lease-1", entities.LeasePartyTenant, "A. Jones", testNow).
			Return(entities.Lease{}, interfaces.ErrConditionFailed)

		_, err := uc.SignLease(context.Background(), "lease-1", "tenant-1", "A. Jones")
		if !errors.Is(err, ErrTenantAlreadySigned) {
			t.Fatalf("expected ErrTenantAlreadySigned, got %v", err)
		}
	})

	t.Run("terminated lease cannot be signed", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		l := draftLease()
		l.Status = entities.LeaseStatusTerminated
		m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(l, nil)
		_, err := uc.SignLease(context.Background(), "lease-1", "tenant-1", "A. Jones")
		if !errors.Is(err, ErrLeaseNotSignable) {
			t.Fatalf("expected ErrLeaseNotSignable, got %v", err)
		}
	})

	for _, order := range []struct {
		name       string
		first      entities.LeaseParty
		lastSigner string
		lastSig    string
	}{
		{"tenant signs last", entities.LeasePartyLandlord, "tenant-1", "A. Jones"},
		{"landlord signs last", entities.LeasePartyTenant, "landlord-1", "J. Smith"},
	} {
		t.Run("activation when "+order.name, func(t *testing.T) {
			uc, m := newLeaseUseCase(t)
			pending := draftLease()
			pending.Status = entities.LeaseStatusPendingSignatures
			if order.first == entities.LeasePartyLandlord {
				pending.LandlordSignature = "J. Smith"
			} else {
				pending.TenantSignature = "A. Jones"
			}
			signed := pending
			signed.LandlordSignature, signed.TenantSignature = "J. Smith", "A. Jones"
			active := signed
			active.Status = entities.LeaseStatusActive

			m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(pending, nil)
			m.leases.EXPECT().RecordSignature(gomock.Any(), "lease-1", gomock.Any(), order.lastSig, testNow).Return(signed, nil)
			m.leases.EXPECT().UpdateStatus(gomock.Any(), "lease-1", entities.LeaseStatusPendingSignatures, entities.LeaseStatusActive, testNow).Return(active, nil)
			m.properties.EXPECT().UpdateStatus(gomock.Any(), "property-1", entities.PropertyStatusOccupied).
				Return(entities.Property{ID: "property-1", Status: entities.PropertyStatusOccupied}, nil)

			notified := map[string]entities.Notification{}
			m.sink.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
				func(_ context.Context, n entities.Notification) error {
					notified[n.UserID] = n
					return nil
				},
			)

			res, err := uc.SignLease(context.Background(), "lease-1", order.lastSigner, order.lastSig)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != entities.LeaseStatusActive {
				t.Fatalf("expected active, got %s", res.Status)
			}
			for _, userID := range []string{"landlord-1", "tenant-1"} {
				n, ok := notified[userID]
				if !ok || n.Title != "Lease Agreement Activated" || n.Type != entities.NotificationTypeLeaseActivated {
					t.Fatalf("missing activation notification for %s: %+v", userID, notified)
				}
			}
		})
	}

	t.Run("activation survives property and notification failures", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		pending := draftLease()
		pending.Status = entities.LeaseStatusPendingSignatures
		pending.LandlordSignature = "J. Smith"
		signed := pending
		signed.TenantSignature = "A. Jones"
		active := signed
		active.Status = entities.LeaseStatusActive

		m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(pending, nil)
		m.leases.EXPECT().RecordSignature(gomock.Any(), "lease-1", entities.LeasePartyTenant, "A. Jones", testNow).Return(signed, nil)
		m.leases.EXPECT().UpdateStatus(gomock.Any(), "lease-1", entities.LeaseStatusPendingSignatures, entities.LeaseStatusActive, testNow).Return(active, nil)
		m.properties.EXPECT().UpdateStatus(gomock.Any(), "property-1", entities.PropertyStatusOccupied).Return(entities.Property{}, errors.New("throttled"))
		m.sink.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(2).Return(errors.New("smtp down"))

		res, err := uc.SignLease(context.Background(), "lease-1", "tenant-1", "A. Jones")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.LeaseStatusActive {
			t.Fatalf("expected active, got %s", res.Status)
		}
	})

	t.Run("activation already done by a concurrent signer", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		pending := draftLease()
		pending.Status = entities.LeaseStatusPendingSignatures
		pending.LandlordSignature = "J. Smith"
		signed := pending
		signed.TenantSignature = "A. Jones"
		active := signed
		active.Status = entities.LeaseStatusActive

		gomock.InOrder(
			m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(pending, nil),
			m.leases.EXPECT().RecordSignature(gomock.Any(), "lease-1", entities.LeasePartyTenant, "A. Jones", testNow).Return(signed, nil),
			m.leases.EXPECT().UpdateStatus(gomock.Any(), "lease-1", entities.LeaseStatusPendingSignatures, entities.LeaseStatusActive, testNow).Return(entities.Lease{}, interfaces.ErrConditionFailed),
			m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(active, nil),
		)

		res, err := uc.SignLease(context.Background(), "lease-1", "tenant-1", "A. Jones")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.LeaseStatusActive {
			t.Fatalf("expected active, got %s", res.Status)
		}
	})

	t.Run("activation write failure keeps the signature", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		pending := draftLease()
		pending.Status = entities.LeaseStatusPendingSignatures
		pending.LandlordSignature = "J. Smith"
		signed := pending
		signed.TenantSignature = "A. Jones"

		m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(pending, nil)
		m.leases.EXPECT().RecordSignature(gomock.Any(), "lease-1", entities.LeasePartyTenant, "A. Jones", testNow).Return(signed, nil)
		m.leases.EXPECT().UpdateStatus(gomock.Any(), "lease-1", entities.LeaseStatusPendingSignatures, entities.LeaseStatusActive, testNow).Return(entities.Lease{}, errors.New("db"))

		res, err := uc.SignLease(context.Background(), "lease-1", "tenant-1", "A. Jones")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.LeaseStatusPendingSignatures || !res.FullySigned() {
			t.Fatalf("expected signed pending lease, got %+v", res)
		}
	})
}

func TestLeaseUseCase_TerminateLease(t *testing.T) {
	activeLease := func() entities.Lease {
		l := draftLease()
		l.LandlordSignature, l.TenantSignature = "J. Smith", "A. Jones"
		l.Status = entities.LeaseStatusActive
		return l
	}

	t.Run("not found", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(entities.Lease{}, nil)
		_, err := uc.TerminateLease(context.Background(), "lease-1", "landlord-1")
		if !errors.Is(err, ErrLeaseNotFound) {
			t.Fatalf("expected ErrLeaseNotFound, got %v", err)
		}
	})

	t.Run("not active", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(draftLease(), nil)
		_, err := uc.TerminateLease(context.Background(), "lease-1", "landlord-1")
		if !errors.Is(err, ErrLeaseNotActive) {
			t.Fatalf("expected ErrLeaseNotActive, got %v", err)
		}
	})

	t.Run("tenant cannot terminate", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(activeLease(), nil)
		_, err := uc.TerminateLease(context.Background(), "lease-1", "tenant-1")
		if !errors.Is(err, ErrNotLeaseLandlord) {
			t.Fatalf("expected ErrNotLeaseLandlord, got %v", err)
		}
	})

	t.Run("concurrent status change", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(activeLease(), nil)
		m.leases.EXPECT().UpdateStatus(gomock.Any(), "lease-1", entities.LeaseStatusActive, entities.LeaseStatusTerminated, testNow).Return(entities.Lease{}, interfaces.ErrConditionFailed)
		_, err := uc.TerminateLease(context.Background(), "lease-1", "landlord-1")
		if !errors.Is(err, ErrLeaseNotActive) {
			t.Fatalf("expected ErrLeaseNotActive, got %v", err)
		}
	})

	t.Run("terminate success releases the property", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		terminated := activeLease()
		terminated.Status = entities.LeaseStatusTerminated

		m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(activeLease(), nil)
		m.leases.EXPECT().UpdateStatus(gomock.Any(), "lease-1", entities.LeaseStatusActive, entities.LeaseStatusTerminated, testNow).Return(terminated, nil)
		m.leases.EXPECT().ListByStatus(gomock.Any(), entities.LeaseStatusActive).Return([]entities.Lease{activeLease()}, nil)
		m.properties.EXPECT().UpdateStatus(gomock.Any(), "property-1", entities.PropertyStatusAvailable).
			Return(entities.Property{ID: "property-1", Status: entities.PropertyStatusAvailable}, nil)
		m.sink.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) error {
				if n.UserID != "tenant-1" || n.Type != entities.NotificationTypeLeaseTerminated {
					t.Fatalf("unexpected notification: %+v", n)
				}
				return nil
			},
		)

		res, err := uc.TerminateLease(context.Background(), "lease-1", "landlord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.LeaseStatusTerminated {
			t.Fatalf("expected terminated, got %s", res.Status)
		}
	})

	t.Run("renewal keeps the property occupied", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		terminated := activeLease()
		terminated.Status = entities.LeaseStatusTerminated
		renewal := activeLease()
		renewal.ID = "lease-2"

		m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(activeLease(), nil)
		m.leases.EXPECT().UpdateStatus(gomock.Any(), "lease-1", entities.LeaseStatusActive, entities.LeaseStatusTerminated, testNow).Return(terminated, nil)
		m.leases.EXPECT().ListByStatus(gomock.Any(), entities.LeaseStatusActive).Return([]entities.Lease{renewal}, nil)
		m.sink.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.TerminateLease(context.Background(), "lease-1", "landlord-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("active lease lookup failure leaves the property alone", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		terminated := activeLease()
		terminated.Status = entities.LeaseStatusTerminated

		m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(activeLease(), nil)
		m.leases.EXPECT().UpdateStatus(gomock.Any(), "lease-1", entities.LeaseStatusActive, entities.LeaseStatusTerminated, testNow).Return(terminated, nil)
		m.leases.EXPECT().ListByStatus(gomock.Any(), entities.LeaseStatusActive).Return(nil, errors.New("db"))
		m.sink.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.TerminateLease(context.Background(), "lease-1", "landlord-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLeaseUseCase_GetAndList(t *testing.T) {
	t.Run("get requires a party", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		m.leases.EXPECT().GetByID(gomock.Any(), "lease-1").Return(draftLease(), nil)
		_, err := uc.GetLease(context.Background(), "lease-1", "intruder")
		if !errors.Is(err, ErrNotLeaseParty) {
			t.Fatalf("expected ErrNotLeaseParty, got %v", err)
		}
	})

	t.Run("list merges roles newest first", func(t *testing.T) {
		uc, m := newLeaseUseCase(t)
		older := draftLease()
		older.CreatedAt = date(2024, 1, 1)
		newer := draftLease()
		newer.ID = "lease-2"
		newer.CreatedAt = date(2025, 1, 1)
		asTenant := draftLease()
		asTenant.ID = "lease-3"
		asTenant.LandlordID = "other"
		asTenant.TenantID = "landlord-1"
		asTenant.CreatedAt = date(2024, 6, 1)

		m.leases.EXPECT().ListByLandlordID(gomock.Any(), "landlord-1").Return([]entities.Lease{older, newer}, nil)
		m.leases.EXPECT().ListByTenantID(gomock.Any(), "landlord-1").Return([]entities.Lease{asTenant, older}, nil)

		res, err := uc.ListLeasesForUser(context.Background(), "landlord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 3 || res[0].ID != "lease-2" || res[1].ID != "lease-3" || res[2].ID != "lease-1" {
			t.Fatalf("unexpected order: %+v", res)
		}
	})
}

func TestLeaseUseCase_ReconcileOccupancy(t *testing.T) {
	uc, m := newLeaseUseCase(t)

	stuck := draftLease()
	stuck.ID = "lease-stuck"
	stuck.PropertyID = "property-stuck"
	stuck.Status = entities.LeaseStatusPendingSignatures
	stuck.LandlordSignature, stuck.TenantSignature = "J. Smith", "A. Jones"
	halfSigned := draftLease()
	halfSigned.ID = "lease-half"
	halfSigned.Status = entities.LeaseStatusPendingSignatures
	halfSigned.LandlordSignature = "J. Smith"
	activated := stuck
	activated.Status = entities.LeaseStatusActive

	active := draftLease()
	active.ID = "lease-active"
	active.PropertyID = "property-a"
	active.Status = entities.LeaseStatusActive

	ended := draftLease()
	ended.ID = "lease-ended"
	ended.PropertyID = "property-b"
	ended.Status = entities.LeaseStatusTerminated
	endedButRelet := draftLease()
	endedButRelet.ID = "lease-old"
	endedButRelet.PropertyID = "property-a"
	endedButRelet.Status = entities.LeaseStatusExpired

	m.leases.EXPECT().ListByStatus(gomock.Any(), entities.LeaseStatusPendingSignatures).Return([]entities.Lease{stuck, halfSigned}, nil)
	m.leases.EXPECT().UpdateStatus(gomock.Any(), "lease-stuck", entities.LeaseStatusPendingSignatures, entities.LeaseStatusActive, testNow).Return(activated, nil)
	m.properties.EXPECT().UpdateStatus(gomock.Any(), "property-stuck", entities.PropertyStatusOccupied).Return(entities.Property{ID: "property-stuck"}, nil)
	m.sink.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(2).Return(nil)

	m.leases.EXPECT().ListByStatus(gomock.Any(), entities.LeaseStatusActive).Return([]entities.Lease{active}, nil)
	m.properties.EXPECT().GetByID(gomock.Any(), "property-a").Return(entities.Property{ID: "property-a", Status: entities.PropertyStatusAvailable}, nil)
	m.properties.EXPECT().UpdateStatus(gomock.Any(), "property-a", entities.PropertyStatusOccupied).Return(entities.Property{ID: "property-a"}, nil)

	m.leases.EXPECT().ListByStatus(gomock.Any(), entities.LeaseStatusTerminated).Return([]entities.Lease{ended}, nil)
	m.leases.EXPECT().ListByStatus(gomock.Any(), entities.LeaseStatusExpired).Return([]entities.Lease{endedButRelet}, nil)
	m.properties.EXPECT().GetByID(gomock.Any(), "property-b").Return(entities.Property{ID: "property-b", Status: entities.PropertyStatusOccupied}, nil)
	m.properties.EXPECT().UpdateStatus(gomock.Any(), "property-b", entities.PropertyStatusAvailable).Return(entities.Property{ID: "property-b"}, nil)

	report, err := uc.ReconcileOccupancy(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := OccupancyReport{LeasesActivated: 1, PropertiesOccupied: 1, PropertiesReleased: 1}
	if report != want {
		t.Fatalf("expected %+v, got %+v", want, report)
	}
}
