package domain

// Credential is an opaque access-key pair for a file store. Issuance and
// renewal happen elsewhere; probes only consume it.
type Credential struct {
	AccessKeyID     string `json:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey" yaml:"secretAccessKey"`
}

// WebsiteTarget is one monitored HTTP endpoint. URL doubles as the
// target's unique key.
type WebsiteTarget struct {
	URL  string `json:"url" yaml:"url"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// DisplayName returns the configured name, falling back to the URL.
func (t WebsiteTarget) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.URL
}

// Key returns the stable snapshot key for this target.
func (t WebsiteTarget) Key() string { return t.URL }

// FileStoreTarget is one monitored hierarchical file share. Exactly one of
// SASURL and Credential must be set; validation happens at probe entry so a
// misconfigured target degrades to an error result instead of failing the
// whole cycle.
type FileStoreTarget struct {
	AccountName string      `json:"accountName,omitempty" yaml:"accountName,omitempty"`
	ShareName   string      `json:"shareName" yaml:"shareName"`
	SASURL      string      `json:"sasUrl,omitempty" yaml:"sasUrl,omitempty"`
	Credential  *Credential `json:"credential,omitempty" yaml:"credential,omitempty"`
	Name        string      `json:"name,omitempty" yaml:"name,omitempty"`

	// Directories restricts traversal to exactly these subtrees. When empty
	// the whole share root is traversed and the result carries no breakdown.
	Directories []string `json:"directories,omitempty" yaml:"directories,omitempty"`
}

// DisplayName returns the configured name, falling back to the share path.
func (t FileStoreTarget) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Key()
}

// Key returns the stable snapshot key for this target:
// accountName/shareName, or the name (then SAS URL) when no account name
// was configured.
func (t FileStoreTarget) Key() string {
	if t.AccountName != "" {
		return t.AccountName + "/" + t.ShareName
	}
	if t.Name != "" {
		return t.Name
	}
	return t.SASURL
}

// TargetSet is the full monitored configuration for one orchestrator.
// It is treated as immutable: configuration changes build a new set and
// swap it in wholesale.
type TargetSet struct {
	Websites []WebsiteTarget   `json:"websites" yaml:"websites"`
	Stores   []FileStoreTarget `json:"fileShares" yaml:"fileShares"`
}

// Len returns the total number of targets of both kinds.
func (s TargetSet) Len() int { return len(s.Websites) + len(s.Stores) }
