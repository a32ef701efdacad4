package service

import (
	"errors"
	"time"

	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/pkg/cache"
)

type DeskOption func(*Desk)

// DraftTTL is how long an untouched draft stays open.
func DraftTTL(ttl time.Duration) DeskOption {
	return func(d *Desk) {
		d.draftTTL = ttl
	}
}

func LookupTimeout(timeout time.Duration) DeskOption {
	return func(d *Desk) {
		d.lookupTimeout = timeout
	}
}

func UsersPageLimit(limit int) DeskOption {
	return func(d *Desk) {
		d.usersPageLimit = limit
	}
}

// DirectoryCache keeps the user and invoice directories for ttl.
func DirectoryCache(
	users cache.Cache[string, []entity.User],
	invoices cache.Cache[string, []entity.Invoice],
	ttl time.Duration,
) DeskOption {
	return func(d *Desk) {
		d.userCache = users
		d.invoiceCache = invoices
		d.directoryTTL = ttl
	}
}

func (d *Desk) validateDeps() error {
	switch {
	case d.store == nil:
		return errors.New("consignment store is required")
	case d.exporter == nil:
		return errors.New("exporter is required")
	case d.users == nil:
		return errors.New("user directory is required")
	case d.invoices == nil:
		return errors.New("invoice directory is required")
	case d.lookup == nil:
		return errors.New("rate card lookup is required")
	case d.drafts == nil:
		return errors.New("draft cache is required")
	case d.log == nil:
		return errors.New("logger is required")
	case d.metrics == nil:
		return errors.New("metrics are required")
	case d.draftTTL <= 0:
		return errors.New("invalid draft ttl: must be > 0")
	case d.directoryTTL <= 0:
		return errors.New("invalid directory ttl: must be > 0")
	case d.usersPageLimit <= 0:
		return errors.New("invalid users page limit: must be > 0")
	case d.lookupTimeout < 0:
		return errors.New("invalid lookup timeout: must be >= 0")
	}
	return nil
}
