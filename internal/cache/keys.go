package cache

// PublicKey returns the cache key for a public listing of the named domain.
// Admin writes delete this key so the next public read repopulates it.
func PublicKey(domain string) string {
	return "public:" + domain
}

// PublicListTTLSeconds 公開列表快取的存活秒數。
const PublicListTTLSeconds = 60
