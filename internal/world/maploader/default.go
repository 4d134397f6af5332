package maploader

// DefaultMapData is the classic demo arena: a walled 497x497 room with three
// pillars and a triangle.
func DefaultMapData() *MapData {
	return &MapData{
		Name:        "default",
		Width:       497,
		Height:      497,
		PlayerSpawn: SpawnPoint{X: 205, Y: 205},
		Obstacles: []ObstacleData{
			{Name: "arena", Rect: &RectData{Width: 497, Height: 497}},
			{Name: "pillar_west", Origin: PointData{X: 112}, Rect: &RectData{Width: 73, Height: 212}},
			{Name: "pillar_east", Origin: PointData{X: 419}, Rect: &RectData{Width: 80, Height: 112}},
			{Name: "block", Origin: PointData{X: 347, Y: 256}, Rect: &RectData{Width: 91, Height: 48}},
			{Name: "triangle", Points: []PointData{{X: 177, Y: 334}, {X: 259, Y: 443}, {X: 98, Y: 443}}},
		},
	}
}

// Default returns the built-in map
func Default() *Map {
	m, err := FromData(DefaultMapData())
	if err != nil {
		panic("maploader: built-in map is invalid: " + err.Error())
	}
	return m
}
