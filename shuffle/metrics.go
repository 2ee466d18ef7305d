// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package shuffle

import "github.com/vechain/detshuffle/metrics"

var (
	metricCount  = metrics.LazyLoadCounter("shuffle_count")
	metricSize   = metrics.LazyLoadHistogram("shuffle_size", metrics.BucketSize)
	metricErrors = metrics.LazyLoadCounterVec("shuffle_errors", []string{"kind"})
)
