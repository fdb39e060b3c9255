package scenedsl

// SceneCube3D builds a single unit cube centered at the origin in a
// 3-dimensional space.
const SceneCube3D = `
(cube "center" (0 0 0) "halfwidth" 1 "color" (0.8 0.2 0.2))
`

// SceneTwoCubes3D builds two disjoint cubes, for exercising hidden-solid
// elimination and scan-conversion volume checks against non-overlapping
// geometry.
const SceneTwoCubes3D = `
(cube "center" (-3 0 0) "halfwidth" 1 "color" (0.8 0.2 0.2))
(cube "center" (3 0 0) "halfwidth" 1 "color" (0.2 0.2 0.8))
`

// SceneCubeMinusCube3D builds a large cube and a smaller cube centered at
// the same origin, for exercising CSG subtraction volume checks.
const SceneCubeMinusCube3D = `
(cube "center" (0 0 0) "halfwidth" 2 "color" (0.7 0.7 0.7))
(cube "center" (0 0 0) "halfwidth" 1 "color" (0.1 0.1 0.1))
`

// SceneTesseract4D builds a single unit tesseract centered at the origin
// in a 4-dimensional space.
const SceneTesseract4D = `
(tesseract "center" (0 0 0 0) "halfwidth" 1 "color" (0.3 0.6 0.9))
`
