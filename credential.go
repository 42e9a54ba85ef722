package quotemill

// KeyResolver resolves the classifier API credential.
// Resolution happens once, at harvester construction, so a missing
// credential surfaces as a configuration error before any scoring call.
type KeyResolver interface {
	// ResolveKey returns the first non-empty credential found.
	// Returns an EINVALID error if no credential is available.
	ResolveKey() (string, error)
}

// KeyResolverChain tries each resolver in order and returns the first
// non-empty key. Typical ordering: deployment secret, process
// environment, local credential file.
type KeyResolverChain []KeyResolver

var _ KeyResolver = (KeyResolverChain)(nil)

// ResolveKey returns the first key any resolver in the chain produces.
func (c KeyResolverChain) ResolveKey() (string, error) {
	for _, r := range c {
		key, err := r.ResolveKey()
		if err == nil && key != "" {
			return key, nil
		}
	}
	return "", Errorf(EINVALID, "no classifier API key found")
}

// KeyResolverFunc adapts a function to the KeyResolver interface.
type KeyResolverFunc func() (string, error)

// ResolveKey calls the underlying function.
func (f KeyResolverFunc) ResolveKey() (string, error) {
	return f()
}

// StaticKey returns a resolver that yields a fixed key, used for
// deployment-injected secrets. An empty key resolves as not found.
func StaticKey(key string) KeyResolver {
	return KeyResolverFunc(func() (string, error) {
		if key == "" {
			return "", Errorf(ENOTFOUND, "no static key configured")
		}
		return key, nil
	})
}
