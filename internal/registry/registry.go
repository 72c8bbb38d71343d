// Package registry provides the static category table for FHEVM examples.
//
// Overview:
//   - Responsibility: Map category keys to titles, descriptions, and example lists
//   - Key Types: CategoryDefinition, lookup helpers
//   - Concurrency Model: Immutable process-wide constant data
//   - Error Semantics: ByKey reports missing keys; ByIndex never fails (clamping)
//   - Performance Notes: Fixed-size table, zero allocation lookups
//
// Usage:
//
//	def, ok := registry.ByKey("basic")
//	def := registry.ByIndex(99) // position 99 clamps to the last category
package registry

// CategoryDefinition describes one example category.
//
// Parameters:
//   - Key: Stable category identifier (kebab-case, used in paths and metadata)
//   - Title: Human-readable category title
//   - Description: One-line category description
//   - Examples: Ordered example names used to pre-populate category projects
//
// Concurrency:
//   - Immutable after process start
type CategoryDefinition struct {
	Key         string
	Title       string
	Description string
	Examples    []string
}

// categories is the fixed, ordered category table. Order matters: the
// interactive select and the --category-index flag both address it by
// position.
var categories = []CategoryDefinition{
	{
		Key:         "basic",
		Title:       "Basic Operations",
		Description: "Arithmetic and comparison over encrypted values",
		Examples:    []string{"fhe-counter", "fhe-add", "encrypted-storage"},
	},
	{
		Key:         "encryption",
		Title:       "Encryption & Decryption",
		Description: "Encrypting inputs and requesting decryption of results",
		Examples:    []string{"encrypt-single-value", "encrypt-multiple-values", "decrypt-in-callback"},
	},
	{
		Key:         "access-control",
		Title:       "Access Control",
		Description: "Granting and restricting access to ciphertext handles",
		Examples:    []string{"acl-basics", "allow-transient", "public-decrypt"},
	},
	{
		Key:         "relayer",
		Title:       "Relayer Integration",
		Description: "Client-side encryption and decryption through the relayer SDK",
		Examples:    []string{"relayer-encrypt", "relayer-user-decrypt", "relayer-public-decrypt"},
	},
	{
		Key:         "anti-patterns",
		Title:       "Anti-Patterns",
		Description: "Common mistakes and how to avoid them",
		Examples:    []string{"missing-allow", "branching-on-ciphertext", "view-on-encrypted"},
	},
	{
		Key:         "advanced",
		Title:       "Advanced Examples",
		Description: "Complete privacy-preserving application patterns",
		Examples:    []string{"blind-auction", "confidential-erc20", "sealed-bid-voting"},
	},
}

// Categories returns the ordered category table.
//
// Returns:
//   - []CategoryDefinition: All categories in display order
//
// Concurrency:
//   - Safe for concurrent use; callers must not mutate the result
func Categories() []CategoryDefinition {
	return categories
}

// Keys returns the ordered category keys.
func Keys() []string {
	keys := make([]string, len(categories))
	for i, c := range categories {
		keys[i] = c.Key
	}
	return keys
}

// ByKey looks up a category by its key.
//
// Parameters:
//   - key: Category key (e.g., "basic")
//
// Returns:
//   - CategoryDefinition: The matching category
//   - bool: False if the key is unknown
//
// Concurrency:
//   - Safe for concurrent use
func ByKey(key string) (CategoryDefinition, bool) {
	for _, c := range categories {
		if c.Key == key {
			return c, true
		}
	}
	return CategoryDefinition{}, false
}

// ByIndex returns the category at the given operator-facing position,
// counted from 1 (position 1 is the first category). Out-of-range
// positions are clamped: values below 1 map to the first category and
// values past the end map to the last one. Selection never fails.
//
// Parameters:
//   - index: 1-based position into the ordered category table
//
// Returns:
//   - CategoryDefinition: The resolved category
//   - bool: True if the position was clamped
//
// Concurrency:
//   - Safe for concurrent use
func ByIndex(index int) (CategoryDefinition, bool) {
	clamped := false
	if index < 1 {
		index = 1
		clamped = true
	}
	if index > len(categories) {
		index = len(categories)
		clamped = true
	}
	return categories[index-1], clamped
}
