package entity

// Country, State and City form the read-only geographic hierarchy seeded by
// migration; the API never mutates them.

type Country struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(60);not null" json:"name"`
}

func (Country) TableName() string {
	return "country"
}

type State struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"type:varchar(60);not null" json:"name"`
	Abbreviation string `gorm:"type:varchar(5);not null" json:"abbreviation"`
	CountryID    int64  `gorm:"not null" json:"country_id"`

	Country Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`
}

func (State) TableName() string {
	return "state"
}

type City struct {
	ID      int64  `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	StateID int64  `gorm:"not null" json:"state_id"`

	State State `gorm:"foreignKey:StateID" json:"state,omitempty"`
}

func (City) TableName() string {
	return "city"
}

// DisplayName renders the city the way patient forms show it:
// "name, state-abbr - country".
func (c *City) DisplayName() string {
	return c.Name + ", " + c.State.Abbreviation + " - " + c.State.Country.Name
}
