package scenario

import "github.com/efreeman/hexfront/pkg/hexwar"

// defaultYAML is a small symmetric two-team skirmish: each side starts
// with a city, a factory, a lab, one infantry template, and one scout
// on a radius-5 plains map with a road spine and some rough ground.
const defaultYAML = `
name: skirmish
map:
  radius: 5
  tiles:
    - {pos: {q: -2, r: 0}, terrain: road}
    - {pos: {q: -1, r: 0}, terrain: road}
    - {pos: {q: 0, r: 0}, terrain: road}
    - {pos: {q: 1, r: 0}, terrain: road}
    - {pos: {q: 2, r: 0}, terrain: road}
    - {pos: {q: 0, r: -2}, terrain: forest}
    - {pos: {q: 0, r: 2}, terrain: forest}
    - {pos: {q: -1, r: -1}, terrain: hills}
    - {pos: {q: 1, r: 1}, terrain: hills}
    - {pos: {q: 0, r: -4}, terrain: water}
    - {pos: {q: 0, r: 4}, terrain: water}
catalog:
  chassis:
    - {id: infantry, name: Infantry, speed: 3, capacity: 2, cost: 100}
    - {id: wheels, name: Wheeled, speed: 5, capacity: 3, cost: 200}
    - {id: tracks, name: Tracked, speed: 4, capacity: 5, cost: 400, armored: true}
  weapons:
    - {id: rifle, name: Rifle, attack: 4, range: 1, weight: 1, cost: 50}
    - {id: cannon, name: Cannon, attack: 6, range: 1, weight: 3, cost: 200, armor_piercing: true, compatible: [wheels, tracks]}
    - {id: artillery, name: Artillery, attack: 5, range: 3, weight: 4, cost: 350, compatible: [tracks]}
  systems:
    - {id: capture-kit, name: Capture Kit, weight: 1, cost: 50, grants_capture: true, compatible: [infantry]}
    - {id: plating, name: Plating, weight: 2, cost: 150, grants_armor: true}
techs:
  - {id: mechanization, name: Mechanization, cost: 100, weapons: [cannon]}
  - {id: heavy-industry, name: Heavy Industry, cost: 200, requires: [mechanization], chassis: [tracks]}
  - {id: ballistics, name: Ballistics, cost: 300, requires: [heavy-industry], weapons: [artillery], systems: [plating]}
teams:
  red:
    funds: 400
    science: 0
    chassis: [infantry, wheels]
    weapons: [rifle]
    systems: [capture-kit]
    templates:
      - {id: rifleman, chassis: infantry, weapon: rifle, systems: [capture-kit]}
    units:
      - {template: rifleman, pos: {q: -4, r: 0}}
    buildings:
      - {type: city, pos: {q: -5, r: 0}}
      - {type: factory, pos: {q: -4, r: -1}}
      - {type: lab, pos: {q: -4, r: 1}}
  blue:
    funds: 400
    science: 0
    chassis: [infantry, wheels]
    weapons: [rifle]
    systems: [capture-kit]
    templates:
      - {id: rifleman, chassis: infantry, weapon: rifle, systems: [capture-kit]}
    units:
      - {template: rifleman, pos: {q: 4, r: 0}}
    buildings:
      - {type: city, pos: {q: 5, r: 0}}
      - {type: factory, pos: {q: 4, r: 1}}
      - {type: lab, pos: {q: 4, r: -1}}
`

// Default returns the built-in skirmish. It panics on error since the
// embedded scenario is fixed at compile time and covered by tests.
func Default() *hexwar.GameState {
	gs, err := FromBytes([]byte(defaultYAML))
	if err != nil {
		panic("built-in scenario: " + err.Error())
	}
	return gs
}
