package generator

import (
	"sync"
)

// PartitionMap splits the flattened cell index range [0, MaxIndex) into
// ParallelDegree contiguous buckets with a maximum imbalance of one cell.
type PartitionMap struct {
	MaxIndex       int
	ParallelDegree int
	Partitions     [][2]int // begin and end index of each bucket
}

func NewPartitionMap(parallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: parallelDegree,
		Partitions:     make([][2]int, parallelDegree),
	}
	for n := 0; n < parallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	var (
		Npart            = pm.MaxIndex / pm.ParallelDegree
		startAdd, endAdd int
		remainder        = pm.MaxIndex % pm.ParallelDegree
	)
	if remainder != 0 { // spread the remainder over the first buckets evenly
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}

// GenerateParallel distributes the cells over jobs workers. Cells are
// independent, so workers share only the read-only frame and parameters;
// each owns its vertex and triangle buffers. Output ordering across workers
// is not defined - the (i, j)-keyed filenames disambiguate. On failure the
// first error in worker order is returned and remaining work is abandoned;
// files already written are left in place.
func (gg *GridGenerator) GenerateParallel(jobs int) (filesWritten int, err error) {
	nCells := gg.Params.Nx * gg.Params.Ny
	if jobs < 1 {
		jobs = 1
	}
	if jobs > nCells {
		jobs = nCells
	}
	if jobs == 1 {
		return gg.GenerateAll()
	}
	if err = gg.ensureOutDir(); err != nil {
		return
	}
	var (
		pm   = NewPartitionMap(jobs, nCells)
		errs = make([]error, jobs)
		wg   sync.WaitGroup
	)
	for n := 0; n < jobs; n++ {
		wg.Add(1)
		go func(myThread int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(myThread)
			for k := kMin; k < kMax; k++ {
				// Flattened index follows the row-major loop: i outer, j inner
				i, j := k/gg.Params.Ny, k%gg.Params.Ny
				if err := gg.GenerateCell(i, j); err != nil {
					errs[myThread] = err
					return
				}
			}
		}(n)
	}
	wg.Wait()
	for _, werr := range errs {
		if werr != nil {
			return 0, werr
		}
	}
	return 2 * nCells, nil
}
