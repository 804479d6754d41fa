package layout

import "github.com/pkg/errors"

// InvalidDescriptorError is the error returned when a Descriptor cannot
// describe a resource the hardware can address. It is a configuration error:
// the same descriptor fails the same way every time.
var InvalidDescriptorError error = errors.New("invalid resource descriptor")

// IncompatibleLayoutError is the error returned from Planner.PlanImported when
// the externally supplied stride does not match the stride this hardware
// requires for the described resource. The resource cannot be imported as-is;
// the caller may retry with a different layout negotiation but the planner
// will not.
var IncompatibleLayoutError error = errors.New("externally supplied stride is incompatible with the computed layout")
