package types

// Version is the monogate version string. Overwritten at release build
// time via -ldflags "-X .../pkg/domain/types.Version=vX.Y.Z".
var Version = "v0.0.1"
