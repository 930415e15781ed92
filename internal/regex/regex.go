package regex

import "regexp"

var (
	// Commit header: type(scope)!: subject
	Header         = regexp.MustCompile(`^(\w*)(?:\((.*)\))?(!)?: (.*)$`)
	BreakingChange = regexp.MustCompile(`^BREAKING[ -]CHANGE:\s*(.*)`)

	// Footer detection
	ReferenceAction = regexp.MustCompile(`(?i)^(?:close[sd]?|fix(?:e[sd])?|resolve[sd]?|refs?)[: ]\s*((?:[\w-]+/[\w.-]+)?#\d+(?:[, ]+(?:[\w-]+/[\w.-]+)?#\d+)*)`)
	IssueReference  = regexp.MustCompile(`(?:([\w-]+/[\w.-]+))?#(\d+)`)
	Trailer         = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]*(?:-[A-Za-z0-9]+)+):\s+(.+)$`)
	SignedOffBy     = regexp.MustCompile(`^Signed-off-by: .+`)
	Scissors        = regexp.MustCompile(`^# -+ >8 -+$`)

	// Messages generated by git or tooling, skipped unless disabled
	MergeCommit      = regexp.MustCompile(`^((Merge pull request)|(Merge (.*?) into (.*?)|(Merge branch (.*?)))(?:\r?\n)*$)`)
	MergeRemote      = regexp.MustCompile(`^Merge remote-tracking branch(\s*)(.*)`)
	MergeTag         = regexp.MustCompile(`^Merge tag (.*)`)
	RevertCommit     = regexp.MustCompile(`^(R|r)evert (.*)`)
	RevertedCommit   = regexp.MustCompile(`^(R|r)everts? "(.*)"`)
	AutosquashCommit = regexp.MustCompile(`^(amend|fixup|squash)! `)
	InitialCommit    = regexp.MustCompile(`^Initial commit$`)
	AutomaticMerge   = regexp.MustCompile(`^Automatic merge(.*)`)
	AutoMerged       = regexp.MustCompile(`^Auto-merged (.*?) into (.*)`)
	SemVerOnly       = regexp.MustCompile(`^v?(?:0|[1-9]\d*)\.(?:0|[1-9]\d*)\.(?:0|[1-9]\d*)(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?$`)

	// Case shapes without a direct x/text mapping
	KebabCase      = regexp.MustCompile(`^[\p{Ll}\p{N}]+(?:-[\p{Ll}\p{N}]+)*$`)
	SnakeCase      = regexp.MustCompile(`^[\p{Ll}\p{N}]+(?:_[\p{Ll}\p{N}]+)*$`)
	CamelCase      = regexp.MustCompile(`^\p{Ll}[\p{L}\p{N}]*$`)
	PascalCase     = regexp.MustCompile(`^\p{Lu}[\p{L}\p{N}]*$`)
	ScopeDelimiter = regexp.MustCompile(`\s*[,/\\]\s*`)
)
