package vkext

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/dxvk-ags/dx"
)

// QueryDevice asks a native object for its backend device interface. On success the caller owns
// the returned reference.
func QueryDevice(object dx.Unknown) (Device, error) {
	if object == nil {
		return nil, errors.Wrap(dx.ErrNoInterface, "cannot query ID3D11VkExtDevice from a nil object")
	}

	unknown, err := object.QueryInterface(IIDDevice)
	if err != nil {
		return nil, errors.Wrap(err, "ID3D11VkExtDevice")
	}

	device, ok := unknown.(Device)
	if !ok {
		unknown.Release()
		return nil, errors.Wrapf(dx.ErrNoInterface, "object returned for ID3D11VkExtDevice is a %T", unknown)
	}

	return device, nil
}

// QueryContext asks a native object for its backend context interface. On success the caller owns
// the returned reference.
func QueryContext(object dx.Unknown) (Context, error) {
	if object == nil {
		return nil, errors.Wrap(dx.ErrNoInterface, "cannot query ID3D11VkExtContext from a nil object")
	}

	unknown, err := object.QueryInterface(IIDContext)
	if err != nil {
		return nil, errors.Wrap(err, "ID3D11VkExtContext")
	}

	context, ok := unknown.(Context)
	if !ok {
		unknown.Release()
		return nil, errors.Wrapf(dx.ErrNoInterface, "object returned for ID3D11VkExtContext is a %T", unknown)
	}

	return context, nil
}
