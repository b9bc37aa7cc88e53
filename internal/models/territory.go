package models

// Administrative chain: Region > Province > Commune > Localite > Secteur >
// Section > Lot > Parcelle.

type Province struct {
	Lookup
	RegionID *int64  `gorm:"column:region_id;index" json:"regionId,omitempty"`
	Region   *Region `gorm:"-" json:"region,omitempty"`
}

func (Province) TableName() string         { return "province" }
func (p *Province) String() string         { return p.format("Province") }
func (p *Province) Equal(o *Province) bool { return Equal(p, o) }

func (p *Province) SetRegion(r *Region) {
	p.Region = r
	p.RegionID = idOf(r)
}

type Commune struct {
	Lookup
	ProvinceID    *int64       `gorm:"column:province_id;index" json:"provinceId,omitempty"`
	Province      *Province    `gorm:"-" json:"province,omitempty"`
	TypeCommuneID *int64       `gorm:"column:typecommune_id;index" json:"typecommuneId,omitempty"`
	TypeCommune   *TypeCommune `gorm:"-" json:"typecommune,omitempty"`
}

func (Commune) TableName() string        { return "commune" }
func (c *Commune) String() string        { return c.format("Commune") }
func (c *Commune) Equal(o *Commune) bool { return Equal(c, o) }

func (c *Commune) SetProvince(p *Province) {
	c.Province = p
	c.ProvinceID = idOf(p)
}

func (c *Commune) SetTypeCommune(t *TypeCommune) {
	c.TypeCommune = t
	c.TypeCommuneID = idOf(t)
}

type Localite struct {
	Lookup
	CommuneID *int64   `gorm:"column:commune_id;index" json:"communeId,omitempty"`
	Commune   *Commune `gorm:"-" json:"commune,omitempty"`
}

func (Localite) TableName() string         { return "localite" }
func (l *Localite) String() string         { return l.format("Localite") }
func (l *Localite) Equal(o *Localite) bool { return Equal(l, o) }

func (l *Localite) SetCommune(c *Commune) {
	l.Commune = c
	l.CommuneID = idOf(c)
}

type Secteur struct {
	Lookup
	LocaliteID *int64    `gorm:"column:localite_id;index" json:"localiteId,omitempty"`
	Localite   *Localite `gorm:"-" json:"localite,omitempty"`
}

func (Secteur) TableName() string        { return "secteur" }
func (s *Secteur) String() string        { return s.format("Secteur") }
func (s *Secteur) Equal(o *Secteur) bool { return Equal(s, o) }

func (s *Secteur) SetLocalite(l *Localite) {
	s.Localite = l
	s.LocaliteID = idOf(l)
}

type Section struct {
	Lookup
	SecteurID *int64   `gorm:"column:secteur_id;index" json:"secteurId,omitempty"`
	Secteur   *Secteur `gorm:"-" json:"secteur,omitempty"`
}

func (Section) TableName() string        { return "section" }
func (s *Section) String() string        { return s.format("Section") }
func (s *Section) Equal(o *Section) bool { return Equal(s, o) }

func (s *Section) SetSecteur(v *Secteur) {
	s.Secteur = v
	s.SecteurID = idOf(v)
}

type Lot struct {
	Lookup
	SectionID *int64   `gorm:"column:section_id;index" json:"sectionId,omitempty"`
	Section   *Section `gorm:"-" json:"section,omitempty"`
}

func (Lot) TableName() string    { return "lot" }
func (l *Lot) String() string    { return l.format("Lot") }
func (l *Lot) Equal(o *Lot) bool { return Equal(l, o) }

func (l *Lot) SetSection(s *Section) {
	l.Section = s
	l.SectionID = idOf(s)
}

type Parcelle struct {
	Lookup
	LotID *int64 `gorm:"column:lot_id;index" json:"lotId,omitempty"`
	Lot   *Lot   `gorm:"-" json:"lot,omitempty"`
}

func (Parcelle) TableName() string         { return "parcelle" }
func (p *Parcelle) String() string         { return p.format("Parcelle") }
func (p *Parcelle) Equal(o *Parcelle) bool { return Equal(p, o) }

func (p *Parcelle) SetLot(l *Lot) {
	p.Lot = l
	p.LotID = idOf(l)
}
