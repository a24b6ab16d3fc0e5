package registry

// 各年份快照的内嵌数据，格式: {完整标题, 缩写, 分级}
// 快照边界: >=2023, >=2021, >=2020, >=2018, >=2017, <=2016

var core2023 = [][3]string{
	{"Conference on Neural Information Processing Systems", "NeurIPS", "A*"},
	{"International Conference on Machine Learning", "ICML", "A*"},
	{"International Conference on Learning Representations", "ICLR", "A*"},
	{"AAAI Conference on Artificial Intelligence", "AAAI", "A*"},
	{"International Joint Conference on Artificial Intelligence", "IJCAI", "A*"},
	{"International Conference on Autonomous Agents and Multiagent Systems", "AAMAS", "A*"},
	{"Conference on Uncertainty in Artificial Intelligence", "UAI", "A"},
	{"International Conference on Artificial Intelligence and Statistics", "AISTATS", "A"},
	{"Annual Conference on Computational Learning Theory", "COLT", "A*"},
	{"IEEE Conference on Computer Vision and Pattern Recognition", "CVPR", "A*"},
	{"IEEE International Conference on Computer Vision", "ICCV", "A*"},
	{"European Conference on Computer Vision", "ECCV", "A*"},
	{"British Machine Vision Conference", "BMVC", "A"},
	{"IEEE Winter Conference on Applications of Computer Vision", "WACV", "A"},
	{"Annual Meeting of the Association for Computational Linguistics", "ACL", "A*"},
	{"Conference on Empirical Methods in Natural Language Processing", "EMNLP", "A*"},
	{"North American Chapter of the Association for Computational Linguistics", "NAACL", "A"},
	{"International Conference on Computational Linguistics", "COLING", "A"},
	{"ACM International Conference on Knowledge Discovery and Data Mining", "KDD", "A*"},
	{"ACM International Conference on Management of Data", "SIGMOD", "A*"},
	{"International Conference on Very Large Data Bases", "VLDB", "A*"},
	{"IEEE International Conference on Data Engineering", "ICDE", "A*"},
	{"IEEE International Conference on Data Mining", "ICDM", "A*"},
	{"Industrial Conference on Data Mining", "ICDM", "C"},
	{"SIAM International Conference on Data Mining", "SDM", "A"},
	{"Pacific-Asia Conference on Knowledge Discovery and Data Mining", "PAKDD", "A"},
	{"European Conference on Machine Learning and Knowledge Discovery in Databases", "ECML-PKDD", "A"},
	{"ACM Conference on Recommender Systems", "RecSys", "A"},
	{"ACM International Conference on Web Search and Data Mining", "WSDM", "A*"},
	{"ACM International Conference on Information and Knowledge Management", "CIKM", "A"},
	{"International World Wide Web Conference", "WWW", "A*"},
	{"ACM International Conference on Research and Development in Information Retrieval", "SIGIR", "A*"},
	{"European Conference on Information Retrieval", "ECIR", "A"},
	{"ACM Conference on Human Factors in Computing Systems", "CHI", "A*"},
	{"ACM Conference on Computer Supported Cooperative Work", "CSCW", "A"},
	{"ACM Conference on Computer and Communications Security", "CCS", "A*"},
	{"IEEE Symposium on Security and Privacy", "SP", "A*"},
	{"Network and Distributed System Security Symposium", "NDSS", "A*"},
	{"USENIX Security Symposium", "USENIX-Security", "A*"},
	{"USENIX Symposium on Operating Systems Design and Implementation", "OSDI", "A*"},
	{"ACM Symposium on Operating Systems Principles", "SOSP", "A*"},
	{"USENIX Symposium on Networked Systems Design and Implementation", "NSDI", "A*"},
	{"ACM SIGCOMM Conference", "SIGCOMM", "A*"},
	{"IEEE International Conference on Computer Communications", "INFOCOM", "A*"},
	{"International Symposium on Computer Architecture", "ISCA", "A*"},
	{"IEEE/ACM International Symposium on Microarchitecture", "MICRO", "A*"},
	{"ACM Symposium on Theory of Computing", "STOC", "A*"},
	{"IEEE Symposium on Foundations of Computer Science", "FOCS", "A*"},
	{"International Cryptology Conference", "CRYPTO", "A*"},
	{"International Conference on the Theory and Applications of Cryptographic Techniques", "EUROCRYPT", "A*"},
	{"International Conference on Software Engineering", "ICSE", "A*"},
	{"ACM International Conference on the Foundations of Software Engineering", "FSE", "A*"},
	{"IEEE/ACM International Conference on Automated Software Engineering", "ASE", "A*"},
	{"International Symposium on Software Testing and Analysis", "ISSTA", "A"},
	{"IEEE International Conference on Software Testing, Verification and Validation", "ICST", "B"},
	{"ACM SIGPLAN Conference on Programming Language Design and Implementation", "PLDI", "A*"},
	{"ACM Symposium on Principles of Programming Languages", "POPL", "A*"},
	{"IEEE International Conference on Robotics and Automation", "ICRA", "A*"},
	{"IEEE/RSJ International Conference on Intelligent Robots and Systems", "IROS", "A"},
	{"IEEE International Conference on Acoustics, Speech and Signal Processing", "ICASSP", "B"},
	{"Annual Conference of the International Speech Communication Association", "INTERSPEECH", "A"},
	{"IEEE International Conference on Multimedia and Expo", "ICME", "B"},
	{"ACM International Conference on Multimedia", "MM", "A*"},
	{"International Conference on Artificial Neural Networks", "ICANN", "B"},
	{"International Joint Conference on Neural Networks", "IJCNN", "B"},
	{"International Conference on Neural Information Processing", "ICONIP", "B"},
	{"IEEE International Conference on Tools with Artificial Intelligence", "ICTAI", "B"},
	{"International Conference on Pattern Recognition", "ICPR", "B"},
	{"IEEE International Conference on Image Processing", "ICIP", "B"},
	{"International Conference on Machine Learning and Applications", "ICMLA", "C"},
	{"International Conference on Agents and Artificial Intelligence", "ICAART", "C"},
	{"International Conference on Natural Computation", "ICNC", "C"},
	{"IEEE International Conference on Big Data", "BigData", "B"},
	{"International Conference on Advanced Data Mining and Applications", "ADMA", "C"},
	{"International Conference on Web Engineering", "ICWE", "B"},
	{"Australasian Joint Conference on Artificial Intelligence", "AJCAI", "B"},
	{"International Conference on Parallel Processing", "ICPP", "B"},
	{"IEEE International Parallel and Distributed Processing Symposium", "IPDPS", "A"},
	{"International Conference for High Performance Computing, Networking, Storage and Analysis", "SC", "A*"},
	{"International Conference on Computational Science", "ICCS", "A"},
	{"International Semantic Web Conference", "ISWC", "A"},
	{"Extended Semantic Web Conference", "ESWC", "A"},
	{"International Conference on Medical Image Computing and Computer Assisted Intervention", "MICCAI", "A"},
	{"IEEE International Symposium on Biomedical Imaging", "ISBI", "B"},
	{"ACM Conference on Economics and Computation", "EC", "A*"},
	{"International Colloquium on Automata, Languages and Programming", "ICALP", "A"},
	{"Symposium on Discrete Algorithms", "SODA", "A*"},
	{"International Conference on Distributed Computing Systems", "ICDCS", "A"},
	{"IEEE International Conference on Cloud Computing", "CLOUD", "B"},
	{"International Conference on Service Oriented Computing", "ICSOC", "A"},
	{"Hawaii International Conference on System Sciences", "HICSS", "National: USA"},
}

var core2021 = [][3]string{
	{"Conference on Neural Information Processing Systems", "NeurIPS", "A*"},
	{"International Conference on Machine Learning", "ICML", "A*"},
	{"International Conference on Learning Representations", "ICLR", "A*"},
	{"AAAI Conference on Artificial Intelligence", "AAAI", "A*"},
	{"International Joint Conference on Artificial Intelligence", "IJCAI", "A*"},
	{"International Conference on Autonomous Agents and Multiagent Systems", "AAMAS", "A*"},
	{"Conference on Uncertainty in Artificial Intelligence", "UAI", "A"},
	{"International Conference on Artificial Intelligence and Statistics", "AISTATS", "A"},
	{"Annual Conference on Computational Learning Theory", "COLT", "A*"},
	{"IEEE Conference on Computer Vision and Pattern Recognition", "CVPR", "A*"},
	{"IEEE International Conference on Computer Vision", "ICCV", "A*"},
	{"European Conference on Computer Vision", "ECCV", "A*"},
	{"British Machine Vision Conference", "BMVC", "A"},
	{"Annual Meeting of the Association for Computational Linguistics", "ACL", "A*"},
	{"Conference on Empirical Methods in Natural Language Processing", "EMNLP", "A*"},
	{"North American Chapter of the Association for Computational Linguistics", "NAACL", "A"},
	{"International Conference on Computational Linguistics", "COLING", "A"},
	{"ACM International Conference on Knowledge Discovery and Data Mining", "KDD", "A*"},
	{"ACM International Conference on Management of Data", "SIGMOD", "A*"},
	{"International Conference on Very Large Data Bases", "VLDB", "A*"},
	{"IEEE International Conference on Data Engineering", "ICDE", "A*"},
	{"IEEE International Conference on Data Mining", "ICDM", "A*"},
	{"Industrial Conference on Data Mining", "ICDM", "C"},
	{"SIAM International Conference on Data Mining", "SDM", "A"},
	{"Pacific-Asia Conference on Knowledge Discovery and Data Mining", "PAKDD", "A"},
	{"ACM Conference on Recommender Systems", "RecSys", "B"},
	{"ACM International Conference on Web Search and Data Mining", "WSDM", "A*"},
	{"ACM International Conference on Information and Knowledge Management", "CIKM", "A"},
	{"International World Wide Web Conference", "WWW", "A*"},
	{"ACM International Conference on Research and Development in Information Retrieval", "SIGIR", "A*"},
	{"ACM Conference on Human Factors in Computing Systems", "CHI", "A*"},
	{"ACM Conference on Computer and Communications Security", "CCS", "A*"},
	{"IEEE Symposium on Security and Privacy", "SP", "A*"},
	{"Network and Distributed System Security Symposium", "NDSS", "A*"},
	{"USENIX Security Symposium", "USENIX-Security", "A*"},
	{"USENIX Symposium on Operating Systems Design and Implementation", "OSDI", "A*"},
	{"ACM Symposium on Operating Systems Principles", "SOSP", "A*"},
	{"ACM SIGCOMM Conference", "SIGCOMM", "A*"},
	{"IEEE International Conference on Computer Communications", "INFOCOM", "A*"},
	{"International Symposium on Computer Architecture", "ISCA", "A*"},
	{"ACM Symposium on Theory of Computing", "STOC", "A*"},
	{"IEEE Symposium on Foundations of Computer Science", "FOCS", "A*"},
	{"International Cryptology Conference", "CRYPTO", "A*"},
	{"International Conference on Software Engineering", "ICSE", "A*"},
	{"IEEE/ACM International Conference on Automated Software Engineering", "ASE", "A"},
	{"ACM SIGPLAN Conference on Programming Language Design and Implementation", "PLDI", "A*"},
	{"ACM Symposium on Principles of Programming Languages", "POPL", "A*"},
	{"IEEE International Conference on Robotics and Automation", "ICRA", "A"},
	{"IEEE/RSJ International Conference on Intelligent Robots and Systems", "IROS", "A"},
	{"IEEE International Conference on Acoustics, Speech and Signal Processing", "ICASSP", "B"},
	{"Annual Conference of the International Speech Communication Association", "INTERSPEECH", "A"},
	{"ACM International Conference on Multimedia", "MM", "A*"},
	{"International Conference on Artificial Neural Networks", "ICANN", "B"},
	{"International Joint Conference on Neural Networks", "IJCNN", "B"},
	{"International Conference on Pattern Recognition", "ICPR", "B"},
	{"IEEE International Conference on Image Processing", "ICIP", "B"},
	{"International Conference on Machine Learning and Applications", "ICMLA", "C"},
	{"International Conference on Natural Computation", "ICNC", "C"},
	{"IEEE International Parallel and Distributed Processing Symposium", "IPDPS", "A"},
	{"International Semantic Web Conference", "ISWC", "A"},
	{"International Conference on Medical Image Computing and Computer Assisted Intervention", "MICCAI", "A"},
	{"Symposium on Discrete Algorithms", "SODA", "A*"},
	{"International Conference on Distributed Computing Systems", "ICDCS", "A"},
}

var core2020 = [][3]string{
	{"Conference on Neural Information Processing Systems", "NeurIPS", "A*"},
	{"International Conference on Machine Learning", "ICML", "A*"},
	{"International Conference on Learning Representations", "ICLR", "A*"},
	{"AAAI Conference on Artificial Intelligence", "AAAI", "A*"},
	{"International Joint Conference on Artificial Intelligence", "IJCAI", "A*"},
	{"International Conference on Autonomous Agents and Multiagent Systems", "AAMAS", "A*"},
	{"Conference on Uncertainty in Artificial Intelligence", "UAI", "A"},
	{"International Conference on Artificial Intelligence and Statistics", "AISTATS", "A"},
	{"IEEE Conference on Computer Vision and Pattern Recognition", "CVPR", "A*"},
	{"IEEE International Conference on Computer Vision", "ICCV", "A*"},
	{"European Conference on Computer Vision", "ECCV", "A*"},
	{"British Machine Vision Conference", "BMVC", "A"},
	{"Annual Meeting of the Association for Computational Linguistics", "ACL", "A*"},
	{"Conference on Empirical Methods in Natural Language Processing", "EMNLP", "A"},
	{"North American Chapter of the Association for Computational Linguistics", "NAACL", "A"},
	{"International Conference on Computational Linguistics", "COLING", "A"},
	{"ACM International Conference on Knowledge Discovery and Data Mining", "KDD", "A*"},
	{"ACM International Conference on Management of Data", "SIGMOD", "A*"},
	{"International Conference on Very Large Data Bases", "VLDB", "A*"},
	{"IEEE International Conference on Data Engineering", "ICDE", "A*"},
	{"IEEE International Conference on Data Mining", "ICDM", "A*"},
	{"Industrial Conference on Data Mining", "ICDM", "C"},
	{"SIAM International Conference on Data Mining", "SDM", "A"},
	{"Pacific-Asia Conference on Knowledge Discovery and Data Mining", "PAKDD", "A"},
	{"ACM Conference on Recommender Systems", "RecSys", "B"},
	{"ACM International Conference on Web Search and Data Mining", "WSDM", "A*"},
	{"ACM International Conference on Information and Knowledge Management", "CIKM", "A"},
	{"International World Wide Web Conference", "WWW", "A*"},
	{"ACM International Conference on Research and Development in Information Retrieval", "SIGIR", "A*"},
	{"ACM Conference on Human Factors in Computing Systems", "CHI", "A*"},
	{"ACM Conference on Computer and Communications Security", "CCS", "A*"},
	{"IEEE Symposium on Security and Privacy", "SP", "A*"},
	{"Network and Distributed System Security Symposium", "NDSS", "A*"},
	{"USENIX Security Symposium", "USENIX-Security", "A*"},
	{"USENIX Symposium on Operating Systems Design and Implementation", "OSDI", "A*"},
	{"ACM SIGCOMM Conference", "SIGCOMM", "A*"},
	{"IEEE International Conference on Computer Communications", "INFOCOM", "A*"},
	{"International Symposium on Computer Architecture", "ISCA", "A*"},
	{"ACM Symposium on Theory of Computing", "STOC", "A*"},
	{"International Cryptology Conference", "CRYPTO", "A*"},
	{"International Conference on Software Engineering", "ICSE", "A*"},
	{"IEEE/ACM International Conference on Automated Software Engineering", "ASE", "A"},
	{"ACM SIGPLAN Conference on Programming Language Design and Implementation", "PLDI", "A*"},
	{"IEEE International Conference on Robotics and Automation", "ICRA", "A"},
	{"IEEE/RSJ International Conference on Intelligent Robots and Systems", "IROS", "A"},
	{"IEEE International Conference on Acoustics, Speech and Signal Processing", "ICASSP", "B"},
	{"Annual Conference of the International Speech Communication Association", "INTERSPEECH", "A"},
	{"ACM International Conference on Multimedia", "MM", "A*"},
	{"International Joint Conference on Neural Networks", "IJCNN", "B"},
	{"International Conference on Pattern Recognition", "ICPR", "B"},
	{"IEEE International Conference on Image Processing", "ICIP", "B"},
	{"International Conference on Machine Learning and Applications", "ICMLA", "C"},
	{"International Semantic Web Conference", "ISWC", "A"},
	{"International Conference on Medical Image Computing and Computer Assisted Intervention", "MICCAI", "A"},
	{"Symposium on Discrete Algorithms", "SODA", "A*"},
}

var core2018 = [][3]string{
	{"Conference on Neural Information Processing Systems", "NeurIPS", "A*"},
	{"International Conference on Machine Learning", "ICML", "A*"},
	{"International Conference on Learning Representations", "ICLR", "A*"},
	{"AAAI Conference on Artificial Intelligence", "AAAI", "A*"},
	{"International Joint Conference on Artificial Intelligence", "IJCAI", "A*"},
	{"International Conference on Autonomous Agents and Multiagent Systems", "AAMAS", "A*"},
	{"Conference on Uncertainty in Artificial Intelligence", "UAI", "A"},
	{"International Conference on Artificial Intelligence and Statistics", "AISTATS", "A"},
	{"IEEE Conference on Computer Vision and Pattern Recognition", "CVPR", "A*"},
	{"IEEE International Conference on Computer Vision", "ICCV", "A*"},
	{"European Conference on Computer Vision", "ECCV", "A*"},
	{"British Machine Vision Conference", "BMVC", "A"},
	{"Annual Meeting of the Association for Computational Linguistics", "ACL", "A*"},
	{"Conference on Empirical Methods in Natural Language Processing", "EMNLP", "A"},
	{"North American Chapter of the Association for Computational Linguistics", "NAACL", "A"},
	{"International Conference on Computational Linguistics", "COLING", "A"},
	{"ACM International Conference on Knowledge Discovery and Data Mining", "KDD", "A*"},
	{"ACM International Conference on Management of Data", "SIGMOD", "A*"},
	{"International Conference on Very Large Data Bases", "VLDB", "A*"},
	{"IEEE International Conference on Data Engineering", "ICDE", "A*"},
	{"IEEE International Conference on Data Mining", "ICDM", "A*"},
	{"Industrial Conference on Data Mining", "ICDM", "C"},
	{"SIAM International Conference on Data Mining", "SDM", "A"},
	{"Pacific-Asia Conference on Knowledge Discovery and Data Mining", "PAKDD", "A"},
	{"ACM Conference on Recommender Systems", "RecSys", "B"},
	{"ACM International Conference on Web Search and Data Mining", "WSDM", "A*"},
	{"ACM International Conference on Information and Knowledge Management", "CIKM", "A"},
	{"International World Wide Web Conference", "WWW", "A*"},
	{"ACM International Conference on Research and Development in Information Retrieval", "SIGIR", "A*"},
	{"ACM Conference on Human Factors in Computing Systems", "CHI", "A*"},
	{"ACM Conference on Computer and Communications Security", "CCS", "A*"},
	{"IEEE Symposium on Security and Privacy", "SP", "A*"},
	{"Network and Distributed System Security Symposium", "NDSS", "A*"},
	{"USENIX Security Symposium", "USENIX-Security", "A*"},
	{"USENIX Symposium on Operating Systems Design and Implementation", "OSDI", "A*"},
	{"ACM SIGCOMM Conference", "SIGCOMM", "A*"},
	{"IEEE International Conference on Computer Communications", "INFOCOM", "A*"},
	{"International Symposium on Computer Architecture", "ISCA", "A*"},
	{"ACM Symposium on Theory of Computing", "STOC", "A*"},
	{"International Conference on Software Engineering", "ICSE", "A*"},
	{"IEEE/ACM International Conference on Automated Software Engineering", "ASE", "A"},
	{"IEEE International Conference on Robotics and Automation", "ICRA", "B"},
	{"IEEE/RSJ International Conference on Intelligent Robots and Systems", "IROS", "A"},
	{"IEEE International Conference on Acoustics, Speech and Signal Processing", "ICASSP", "B"},
	{"Annual Conference of the International Speech Communication Association", "INTERSPEECH", "A"},
	{"ACM International Conference on Multimedia", "MM", "A*"},
	{"International Joint Conference on Neural Networks", "IJCNN", "B"},
	{"International Conference on Pattern Recognition", "ICPR", "B"},
	{"International Conference on Machine Learning and Applications", "ICMLA", "C"},
	{"International Semantic Web Conference", "ISWC", "A"},
	{"International Conference on Medical Image Computing and Computer Assisted Intervention", "MICCAI", "B"},
}

var core2017 = [][3]string{
	{"Neural Information Processing Systems", "NIPS", "A*"},
	{"International Conference on Machine Learning", "ICML", "A*"},
	{"AAAI Conference on Artificial Intelligence", "AAAI", "A*"},
	{"International Joint Conference on Artificial Intelligence", "IJCAI", "A*"},
	{"International Conference on Autonomous Agents and Multiagent Systems", "AAMAS", "A*"},
	{"Conference on Uncertainty in Artificial Intelligence", "UAI", "A"},
	{"International Conference on Artificial Intelligence and Statistics", "AISTATS", "A"},
	{"IEEE Conference on Computer Vision and Pattern Recognition", "CVPR", "A*"},
	{"IEEE International Conference on Computer Vision", "ICCV", "A*"},
	{"European Conference on Computer Vision", "ECCV", "A*"},
	{"British Machine Vision Conference", "BMVC", "A"},
	{"Annual Meeting of the Association for Computational Linguistics", "ACL", "A*"},
	{"Conference on Empirical Methods in Natural Language Processing", "EMNLP", "A"},
	{"North American Chapter of the Association for Computational Linguistics", "NAACL", "A"},
	{"International Conference on Computational Linguistics", "COLING", "A"},
	{"ACM International Conference on Knowledge Discovery and Data Mining", "KDD", "A*"},
	{"ACM International Conference on Management of Data", "SIGMOD", "A*"},
	{"International Conference on Very Large Data Bases", "VLDB", "A*"},
	{"IEEE International Conference on Data Engineering", "ICDE", "A*"},
	{"IEEE International Conference on Data Mining", "ICDM", "A*"},
	{"Industrial Conference on Data Mining", "ICDM", "C"},
	{"SIAM International Conference on Data Mining", "SDM", "A"},
	{"Pacific-Asia Conference on Knowledge Discovery and Data Mining", "PAKDD", "A"},
	{"ACM Conference on Recommender Systems", "RecSys", "B"},
	{"ACM International Conference on Web Search and Data Mining", "WSDM", "A*"},
	{"ACM International Conference on Information and Knowledge Management", "CIKM", "A"},
	{"International World Wide Web Conference", "WWW", "A*"},
	{"ACM International Conference on Research and Development in Information Retrieval", "SIGIR", "A*"},
	{"ACM Conference on Human Factors in Computing Systems", "CHI", "A*"},
	{"ACM Conference on Computer and Communications Security", "CCS", "A*"},
	{"IEEE Symposium on Security and Privacy", "SP", "A*"},
	{"USENIX Security Symposium", "USENIX-Security", "A*"},
	{"USENIX Symposium on Operating Systems Design and Implementation", "OSDI", "A*"},
	{"ACM SIGCOMM Conference", "SIGCOMM", "A*"},
	{"IEEE International Conference on Computer Communications", "INFOCOM", "A*"},
	{"International Symposium on Computer Architecture", "ISCA", "A*"},
	{"ACM Symposium on Theory of Computing", "STOC", "A*"},
	{"International Conference on Software Engineering", "ICSE", "A*"},
	{"IEEE/ACM International Conference on Automated Software Engineering", "ASE", "A"},
	{"IEEE International Conference on Robotics and Automation", "ICRA", "B"},
	{"IEEE/RSJ International Conference on Intelligent Robots and Systems", "IROS", "A"},
	{"IEEE International Conference on Acoustics, Speech and Signal Processing", "ICASSP", "B"},
	{"ACM International Conference on Multimedia", "MM", "A*"},
	{"International Joint Conference on Neural Networks", "IJCNN", "B"},
	{"International Conference on Pattern Recognition", "ICPR", "B"},
	{"International Conference on Medical Image Computing and Computer Assisted Intervention", "MICCAI", "B"},
}

var era2010 = [][3]string{
	{"Neural Information Processing Systems", "NIPS", "A"},
	{"International Conference on Machine Learning", "ICML", "A"},
	{"AAAI Conference on Artificial Intelligence", "AAAI", "A"},
	{"International Joint Conference on Artificial Intelligence", "IJCAI", "A"},
	{"International Conference on Autonomous Agents and Multiagent Systems", "AAMAS", "A"},
	{"Conference on Uncertainty in Artificial Intelligence", "UAI", "A"},
	{"IEEE Conference on Computer Vision and Pattern Recognition", "CVPR", "A"},
	{"IEEE International Conference on Computer Vision", "ICCV", "A"},
	{"European Conference on Computer Vision", "ECCV", "A"},
	{"British Machine Vision Conference", "BMVC", "B"},
	{"Annual Meeting of the Association for Computational Linguistics", "ACL", "A"},
	{"Conference on Empirical Methods in Natural Language Processing", "EMNLP", "A"},
	{"International Conference on Computational Linguistics", "COLING", "A"},
	{"ACM International Conference on Knowledge Discovery and Data Mining", "KDD", "A"},
	{"ACM International Conference on Management of Data", "SIGMOD", "A"},
	{"International Conference on Very Large Data Bases", "VLDB", "A"},
	{"IEEE International Conference on Data Engineering", "ICDE", "A"},
	{"IEEE International Conference on Data Mining", "ICDM", "A"},
	{"Industrial Conference on Data Mining", "ICDM", "C"},
	{"SIAM International Conference on Data Mining", "SDM", "A"},
	{"Pacific-Asia Conference on Knowledge Discovery and Data Mining", "PAKDD", "B"},
	{"ACM International Conference on Information and Knowledge Management", "CIKM", "A"},
	{"International World Wide Web Conference", "WWW", "A"},
	{"ACM International Conference on Research and Development in Information Retrieval", "SIGIR", "A"},
	{"ACM Conference on Human Factors in Computing Systems", "CHI", "A"},
	{"ACM Conference on Computer and Communications Security", "CCS", "A"},
	{"IEEE Symposium on Security and Privacy", "SP", "A"},
	{"USENIX Security Symposium", "USENIX-Security", "A"},
	{"USENIX Symposium on Operating Systems Design and Implementation", "OSDI", "A"},
	{"ACM SIGCOMM Conference", "SIGCOMM", "A"},
	{"IEEE International Conference on Computer Communications", "INFOCOM", "A"},
	{"International Symposium on Computer Architecture", "ISCA", "A"},
	{"ACM Symposium on Theory of Computing", "STOC", "A"},
	{"International Conference on Software Engineering", "ICSE", "A"},
	{"IEEE International Conference on Robotics and Automation", "ICRA", "B"},
	{"IEEE International Conference on Acoustics, Speech and Signal Processing", "ICASSP", "B"},
	{"ACM International Conference on Multimedia", "MM", "A"},
	{"International Joint Conference on Neural Networks", "IJCNN", "B"},
	{"International Conference on Pattern Recognition", "ICPR", "B"},
	{"International Conference on Medical Image Computing and Computer Assisted Intervention", "MICCAI", "B"},
}
