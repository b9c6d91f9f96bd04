// Package api
// Author: momentics <momentics@gmail.com>
//
// Capability interfaces and error taxonomy for the netfd library.
// Concrete descriptor and socket types live in fd/ and sock/; this package
// only defines the contracts they satisfy, so higher layers can depend on
// capabilities instead of concrete socket types.
package api
