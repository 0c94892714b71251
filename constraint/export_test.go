package constraint

// CheckComposite exposes checkComposite to the external test package.
var CheckComposite = checkComposite
