package config

// Config is the launcher configuration after defaults have been applied.
// - Root: repository root, the working directory of every step.
// - Runner: build-style command runner invoked as `<runner> <target>`.
// - StateFile: last-run record; empty means the XDG state location.
type Config struct {
	Root      string   `yaml:"root"`
	Runner    string   `yaml:"runner"`
	Dotfiles  Dotfiles `yaml:"dotfiles"`
	Pager     Pager    `yaml:"pager"`
	StateFile string   `yaml:"state_file"`
}

// Dotfiles configures the optional trailing dotfiles step.
type Dotfiles struct {
	Target     string `yaml:"target"`
	ETAMinutes *int   `yaml:"eta_minutes"`
}

// Pager configures the post-dotfiles git pager fixup.
// - Tool: binary probed on PATH; the fixup is skipped without it.
// - Value: expected value for every key.
type Pager struct {
	Tool  string   `yaml:"tool"`
	Value string   `yaml:"value"`
	Keys  []string `yaml:"keys"`
}
