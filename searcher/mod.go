package searcher

// Hyperparameters for MCTS

// Rewards are counted from the root side's perspective throughout one search.
const Win = 1
const Loss = 0

// Cardinal direction offsets (dx, dy) probed by the local-shape bonus.
var directions = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
