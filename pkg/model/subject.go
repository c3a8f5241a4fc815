package model

type Subject struct {
	Name string
}

func NewSubject(name string) *Subject {
	return &Subject{Name: name}
}

func (s *Subject) String() string {
	return s.Name
}
