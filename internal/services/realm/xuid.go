package realm

// Xuider is anything a xuid can be extracted from: *Player, *Banned or Xuid
type Xuider interface {
	Xuid() string
}

// Xuid is a raw xuid
type Xuid string

// Xuid returns the xuid itself
func (x Xuid) Xuid() string {
	return string(x)
}

var (
	_ Xuider = Xuid("")
	_ Xuider = (*Player)(nil)
	_ Xuider = (*Banned)(nil)
)
