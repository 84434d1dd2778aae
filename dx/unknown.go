package dx

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// IIDUnknown is the interface identifier of IUnknown
var IIDUnknown = uuid.MustParse("00000000-0000-0000-c000-000000000046")

// ErrNoInterface is returned from QueryInterface when the object does not implement the
// requested interface (E_NOINTERFACE)
var ErrNoInterface = errors.New("no such interface supported")

// ErrNotFound is returned from enumeration calls once the index runs past the last
// object (DXGI_ERROR_NOT_FOUND)
var ErrNotFound = errors.New("not found")

// Unknown is the reference counted root of every native object
type Unknown interface {
	QueryInterface(iid uuid.UUID) (Unknown, error)
	AddRef() uint32
	Release() uint32
}
