package manifest

// InstallRecord is one installed version of a plugin.
type InstallRecord struct {
	Scope        string `json:"scope"`
	InstallPath  string `json:"installPath"`
	Version      string `json:"version"`
	InstalledAt  string `json:"installedAt"`
	LastUpdated  string `json:"lastUpdated"`
	GitCommitSha string `json:"gitCommitSha"`
}

// Document is the on-disk shape of installed_plugins.json.
type Document struct {
	Plugins map[string][]InstallRecord `json:"plugins"`
}

// Entry is a single manifest key split into its parts.
type Entry struct {
	Key     string          // "<package>@<source>"
	Package string          // text before the first "@"
	Source  string          // text after the first "@"
	Records []InstallRecord // install records in file order
}
