// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package publication

import (
	"errors"
	"testing"

	"councilvote/models"
	"councilvote/testutil"
)

func TestDefaultsToUnpublished(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	gate := New(conn)

	published, err := gate.IsPublished(models.GroupStudent, "President")
	if err != nil {
		t.Fatalf("IsPublished failed: %v", err)
	}
	if published {
		t.Error("Seats must default to unpublished")
	}
}

func TestPublishUnpublishRoundTrip(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	gate := New(conn)

	if err := gate.Publish(models.GroupStudent, "President"); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	published, err := gate.IsPublished(models.GroupStudent, "President")
	if err != nil || !published {
		t.Errorf("Expected published, got %v (err %v)", published, err)
	}

	// Idempotent
	if err := gate.Publish(models.GroupStudent, "President"); err != nil {
		t.Fatalf("Repeated publish failed: %v", err)
	}

	if err := gate.Unpublish(models.GroupStudent, "President"); err != nil {
		t.Fatalf("Unpublish failed: %v", err)
	}
	published, err = gate.IsPublished(models.GroupStudent, "President")
	if err != nil || published {
		t.Errorf("Expected unpublished, got %v (err %v)", published, err)
	}

	if err := gate.Unpublish(models.GroupStudent, "President"); err != nil {
		t.Fatalf("Repeated unpublish failed: %v", err)
	}
}

func TestSeatKeyIsCaseInsensitive(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	gate := New(conn)

	if err := gate.Publish(models.GroupStudent, "  President "); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	published, err := gate.IsPublished(models.GroupStudent, "PRESIDENT")
	if err != nil || !published {
		t.Errorf("Expected case-insensitive seat match, got %v (err %v)", published, err)
	}
}

func TestSeatsAreIndependent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	gate := New(conn)

	if err := gate.Publish(models.GroupStudent, "President"); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	published, err := gate.IsPublished(models.GroupStudent, "Treasurer")
	if err != nil || published {
		t.Errorf("Different position must stay unpublished, got %v (err %v)", published, err)
	}

	published, err = gate.IsPublished(models.GroupTeacher, "President")
	if err != nil || published {
		t.Errorf("Different group must stay unpublished, got %v (err %v)", published, err)
	}
}

func TestPublishValidation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	gate := New(conn)

	if err := gate.Publish("faculty", "President"); !errors.Is(err, models.ErrValidation) {
		t.Errorf("Expected ErrValidation for unknown group, got %v", err)
	}
	if err := gate.Publish(models.GroupStudent, "   "); !errors.Is(err, models.ErrValidation) {
		t.Errorf("Expected ErrValidation for empty position, got %v", err)
	}
}
