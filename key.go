package fixedmap

import "github.com/comalice/fixedmap/shape"

// Key is implemented by key types that carry their own shape descriptor.
// [New] and [NewSet] call KeyShape on the zero key to build storage, so the
// method must not depend on the receiver's value, be cheap, and return the
// same (equivalent) descriptor every time.
//
// Keys are passed around by value everywhere in this package; key types
// should be small copyable values, the way the shape model assumes.
//
// Types that cannot carry a method — or whose descriptor must be computed —
// can skip this interface and use [NewOf] or [NewSetOf] with an explicit
// descriptor instead.
type Key interface {
	KeyShape() shape.Shape
}
